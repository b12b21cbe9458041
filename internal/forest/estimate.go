package forest

import "errors"

// Estimate runs the capture estimator, the emissions estimator and the
// comparator for one set of inputs.
//
// It returns ErrInvalidAge when in.AgeYears is not positive. An undefined
// ratio (no emissions) is not an error here: the result carries
// Ratio.Defined == false and callers display "N/A".
func Estimate(in Inputs, a Assumptions) (EstimationResult, error) {
	capture, err := EstimateCapture(in.Tree(), ForestParameters{
		TreesPerForest: a.TreesPerForest,
		ForestCount:    in.ForestCount,
	})
	if err != nil {
		return EstimationResult{}, err
	}

	emissions := EstimateEmployeeEmissions(OrganizationParameters{
		EmployeeCount:        in.EmployeeCount,
		EmissionsPerCapitaKg: a.EmissionsPerCapitaKg,
	})

	ratio, err := ComputeCaptureRatio(capture.TotalAnnualCO2Kg, emissions)
	if err != nil && !errors.Is(err, ErrUndefinedRatio) {
		return EstimationResult{}, err
	}

	return EstimationResult{
		CapturedKgPerYear:  capture.TotalAnnualCO2Kg,
		EmissionsKgPerYear: emissions,
		Ratio:              ratio,
		Capture:            capture,
	}, nil
}
