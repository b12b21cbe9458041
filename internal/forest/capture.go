package forest

import (
	"fmt"
	"math"
)

// EstimateCapture computes the annual CO2 captured by all tiny forests from
// one representative tree and returns every intermediate step.
//
// The calculation follows the general hardwood allometric method:
//  1. Convert height to feet and diameter to inches
//  2. Pick the coefficient: 0.25 below 11 inches, 0.15 otherwise
//  3. Green weight above ground (lb) = coefficient × height × diameter²
//  4. Convert to kilograms
//  5. Add 20% root mass
//  6. Remove moisture (72.5% dry matter)
//  7. Take the carbon fraction (50%)
//  8. Convert carbon to CO2 (44/12)
//  9. Amortise over the tree's age
//  10. Scale to one forest, then to all forests
//
// Returns ErrInvalidAge if tree.AgeYears is zero, negative or NaN.
func EstimateCapture(tree TreeParameters, forest ForestParameters) (CaptureBreakdown, error) {
	if !(tree.AgeYears > 0) {
		return CaptureBreakdown{}, fmt.Errorf("%w: got %v", ErrInvalidAge, tree.AgeYears)
	}

	trees := forest.TreesPerForest
	if trees <= 0 {
		trees = DefaultTreesPerForest
	}

	b := CaptureBreakdown{
		HeightFt:       FeetFromMeters(tree.HeightM),
		DiameterIn:     InchesFromCm(tree.DiameterCm),
		TreesPerForest: trees,
		ForestCount:    forest.ForestCount,
	}

	b.Coefficient = coefficientFor(b.DiameterIn)
	b.GreenWeightAboveLb = b.Coefficient * b.HeightFt * math.Pow(b.DiameterIn, 2)
	b.GreenWeightAboveKg = KgFromPounds(b.GreenWeightAboveLb)
	b.GreenWeightTotalKg = RootMassFactor * b.GreenWeightAboveKg
	b.DryWeightKg = DryWeightFraction * b.GreenWeightTotalKg
	b.CarbonKg = CarbonFraction * b.DryWeightKg
	b.LifetimeCO2Kg = b.CarbonKg * CO2ToCarbonRatio
	b.AnnualCO2PerTreeKg = b.LifetimeCO2Kg / tree.AgeYears
	b.AnnualCO2PerForestKg = float64(trees) * b.AnnualCO2PerTreeKg
	b.TotalAnnualCO2Kg = float64(forest.ForestCount) * b.AnnualCO2PerForestKg

	return b, nil
}

// EstimateCO2Captured returns only the total annual CO2 captured, in kg.
func EstimateCO2Captured(tree TreeParameters, forest ForestParameters) (float64, error) {
	b, err := EstimateCapture(tree, forest)
	if err != nil {
		return 0, err
	}
	return b.TotalAnnualCO2Kg, nil
}

// coefficientFor selects the allometric coefficient. The breakpoint is
// strict: exactly 11 inches uses the large-tree coefficient.
func coefficientFor(diameterIn float64) float64 {
	if diameterIn < CoefficientBreakpointInches {
		return SmallTreeCoefficient
	}
	return LargeTreeCoefficient
}
