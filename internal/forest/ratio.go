package forest

import (
	"fmt"
	"math"
)

// notApplicable is displayed in place of an undefined ratio.
const notApplicable = "N/A"

// CaptureRatio expresses captured CO2 as a fraction of emitted CO2.
type CaptureRatio struct {
	// Value is captured / emitted. Zero when Defined is false.
	Value float64 `json:"value" yaml:"value"`

	// Percentage is Value × 100.
	Percentage float64 `json:"percentage" yaml:"percentage"`

	// Defined is false when the emitted quantity was zero.
	Defined bool `json:"defined" yaml:"defined"`
}

// String renders the ratio as a two-decimal percentage, or "N/A".
func (r CaptureRatio) String() string {
	if !r.Defined {
		return notApplicable
	}
	return fmt.Sprintf("%.2f%%", r.Percentage)
}

// ComputeCaptureRatio divides captured by emitted.
//
// When emittedKg is zero, or either input is not finite, it returns an
// undefined ratio together with ErrUndefinedRatio. Infinity and NaN are
// never returned.
func ComputeCaptureRatio(capturedKg, emittedKg float64) (CaptureRatio, error) {
	if emittedKg == 0 || !isFinite(emittedKg) || !isFinite(capturedKg) {
		return CaptureRatio{}, ErrUndefinedRatio
	}

	ratio := capturedKg / emittedKg
	return CaptureRatio{
		Value:      ratio,
		Percentage: ratio * PercentMultiplier,
		Defined:    true,
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
