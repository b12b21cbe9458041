package greenops

import (
	"fmt"
	"math"

	"github.com/rshade/tinyforest/internal/forest"
)

// equivalencyFactors lists every equivalency in display priority order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var equivalencyFactors = []struct {
	kind   EquivalencyType
	factor float64
	label  string
}{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "home-days of electricity"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
}

// Calculate computes equivalencies for a quantity of CO2e in kilograms.
//
// Quantities below MinEquivalencyThresholdKg produce an empty output and no
// error. Negative quantities return ErrNegativeValue; non-finite input or
// results return ErrCalculationOverflow.
//
// Example:
//
//	out, err := Calculate(794690)
//	// out.DisplayText == "Equivalent to driving ~4.1 million miles or powering ~43,426 homes for a day"
func Calculate(kg float64) (EquivalencyOutput, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencyFactors))
	for _, f := range equivalencyFactors {
		v := kg / f.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           f.kind,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          f.label,
		})
	}

	miles := results[0].FormattedValue
	homes := results[1].FormattedValue

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or powering ~%s homes for a day", miles, homes),
		CompactText: fmt.Sprintf("(≈ %s mi, %s home-days)", miles, homes),
	}, nil
}

// CalculateQuantity normalizes q to kilograms and computes equivalencies.
func CalculateQuantity(q Quantity) (EquivalencyOutput, error) {
	kg, err := q.Kg()
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	return Calculate(kg)
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values at or above BillionThreshold use "~X.X billion", values at or
// above LargeNumberThreshold use "~X.X million", and anything smaller is a
// comma-separated integer.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return forest.FormatNumber(int64(math.Round(n)))
}

// formatEquivalencyValue strips the leading "~" that FormatLarge adds so
// that the display templates can add their own.
func formatEquivalencyValue(v float64) string {
	s := FormatLarge(v)
	if len(s) > 0 && s[0] == '~' {
		return s[1:]
	}
	return s
}
