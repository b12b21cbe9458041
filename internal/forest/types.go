// Package forest estimates the CO2 captured by tiny forests and compares it
// with the emissions of an organisation's employees.
//
// Capture is derived from a single representative tree using a general
// hardwood allometric equation: trunk diameter and height give green
// biomass, which is corrected for roots and moisture, reduced to carbon,
// converted to CO2 and amortised over the tree's age. The per-tree rate is
// then scaled to the number of trees in a forest and the number of forests.
//
// Every function in this package is pure. Inputs are plain values and
// nothing is cached or mutated between calls.
package forest

// TreeParameters describes the representative tree of a forest.
type TreeParameters struct {
	// DiameterCm is the trunk diameter in centimetres.
	DiameterCm float64 `json:"diameter_cm" yaml:"diameter_cm"`

	// HeightM is the tree height in metres.
	HeightM float64 `json:"height_m" yaml:"height_m"`

	// AgeYears is the tree age. Must be greater than zero.
	AgeYears float64 `json:"age_years" yaml:"age_years"`
}

// ForestParameters describes the forest population.
type ForestParameters struct {
	// TreesPerForest is the planting density of one tiny forest.
	// Zero or negative values fall back to DefaultTreesPerForest.
	TreesPerForest int `json:"trees_per_forest" yaml:"trees_per_forest"`

	// ForestCount is the number of tiny forests.
	ForestCount int `json:"forest_count" yaml:"forest_count"`
}

// OrganizationParameters describes the organisation whose emissions are
// being offset.
type OrganizationParameters struct {
	EmployeeCount        int     `json:"employee_count" yaml:"employee_count"`
	EmissionsPerCapitaKg float64 `json:"emissions_per_capita_kg" yaml:"emissions_per_capita_kg"`
}

// Assumptions holds the constants the estimate depends on that a user may
// reasonably want to change. It is passed explicitly into Estimate.
type Assumptions struct {
	TreesPerForest       int     `json:"trees_per_forest" yaml:"trees_per_forest"`
	EmissionsPerCapitaKg float64 `json:"emissions_per_capita_kg" yaml:"emissions_per_capita_kg"`
}

// DefaultAssumptions returns 600 trees per forest and 4.7 tCO2e per employee.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		TreesPerForest:       DefaultTreesPerForest,
		EmissionsPerCapitaKg: DefaultEmissionsPerCapitaKg,
	}
}

// Inputs are the five scalar values collected by the presentation layer.
type Inputs struct {
	DiameterCm    float64 `json:"diameter_cm" yaml:"diameter_cm"`
	HeightM       float64 `json:"height_m" yaml:"height_m"`
	AgeYears      float64 `json:"age_years" yaml:"age_years"`
	ForestCount   int     `json:"forest_count" yaml:"forest_count"`
	EmployeeCount int     `json:"employee_count" yaml:"employee_count"`
}

// Tree returns the tree portion of the inputs.
func (in Inputs) Tree() TreeParameters {
	return TreeParameters{DiameterCm: in.DiameterCm, HeightM: in.HeightM, AgeYears: in.AgeYears}
}

// CaptureBreakdown records every intermediate value of the capture
// estimate. Masses are in kilograms unless the field name says otherwise.
type CaptureBreakdown struct {
	HeightFt             float64 `json:"height_ft" yaml:"height_ft"`
	DiameterIn           float64 `json:"diameter_in" yaml:"diameter_in"`
	Coefficient          float64 `json:"coefficient" yaml:"coefficient"`
	GreenWeightAboveLb   float64 `json:"green_weight_above_ground_lb" yaml:"green_weight_above_ground_lb"`
	GreenWeightAboveKg   float64 `json:"green_weight_above_ground_kg" yaml:"green_weight_above_ground_kg"`
	GreenWeightTotalKg   float64 `json:"green_weight_total_kg" yaml:"green_weight_total_kg"`
	DryWeightKg          float64 `json:"dry_weight_kg" yaml:"dry_weight_kg"`
	CarbonKg             float64 `json:"carbon_kg" yaml:"carbon_kg"`
	LifetimeCO2Kg        float64 `json:"lifetime_co2_kg" yaml:"lifetime_co2_kg"`
	AnnualCO2PerTreeKg   float64 `json:"annual_co2_per_tree_kg" yaml:"annual_co2_per_tree_kg"`
	AnnualCO2PerForestKg float64 `json:"annual_co2_per_forest_kg" yaml:"annual_co2_per_forest_kg"`
	TreesPerForest       int     `json:"trees_per_forest" yaml:"trees_per_forest"`
	ForestCount          int     `json:"forest_count" yaml:"forest_count"`
	TotalAnnualCO2Kg     float64 `json:"total_annual_co2_kg" yaml:"total_annual_co2_kg"`
}

// EstimationResult is the outcome of one recomputation.
type EstimationResult struct {
	CapturedKgPerYear  float64          `json:"captured_kg_per_year" yaml:"captured_kg_per_year"`
	EmissionsKgPerYear float64          `json:"emissions_kg_per_year" yaml:"emissions_kg_per_year"`
	Ratio              CaptureRatio     `json:"ratio" yaml:"ratio"`
	Capture            CaptureBreakdown `json:"capture" yaml:"capture"`
}
