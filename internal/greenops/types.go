// Package greenops turns carbon quantities into relatable equivalencies
// such as "miles driven" or "days of home electricity" using EPA-published
// conversion factors, and normalizes carbon quantities given in mixed units.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Quantity is a carbon amount with its unit, as written in configuration.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Kg normalizes the quantity to kilograms.
func (q Quantity) Kg() (float64, error) {
	return NormalizeToKg(q.Value, q.Unit)
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type" yaml:"type"`
	Value          float64         `json:"value" yaml:"value"`
	FormattedValue string          `json:"formatted_value" yaml:"formatted_value"`
	Label          string          `json:"label" yaml:"label"`
}

// EquivalencyOutput contains all equivalencies for one quantity.
type EquivalencyOutput struct {
	// InputKg is the quantity the equivalencies were computed for.
	InputKg float64 `json:"input_kg" yaml:"input_kg"`

	// Results are in display priority order.
	Results []EquivalencyResult `json:"results" yaml:"results"`

	// DisplayText is the prose form for CLI/TUI output.
	// Example: "Equivalent to driving ~4.1 million miles or powering ~43,426 homes for a day"
	DisplayText string `json:"display_text" yaml:"display_text"`

	// CompactText is the abbreviated form for narrow layouts.
	CompactText string `json:"compact_text" yaml:"compact_text"`

	IsEmpty bool `json:"is_empty" yaml:"is_empty"`
}
