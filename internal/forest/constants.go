package forest

// Imperial-metric conversion ratios. The allometric equation is defined in
// US customary units, so tree measurements are converted before use.
const (
	// PoundToKg converts avoirdupois pounds to kilograms.
	PoundToKg = 0.45359237

	// FootToMeters is the length of one international foot in metres.
	FootToMeters = 0.3048

	// InchToMeters is the length of one international inch in metres.
	InchToMeters = 0.0254

	// CentimetersPerMeter converts centimetres to metres.
	CentimetersPerMeter = 100.0

	// CentimetersPerInch is folded at compile time so that whole-inch
	// diameters given in centimetres convert without rounding drift.
	CentimetersPerInch = InchToMeters * CentimetersPerMeter
)

// Allometric equation constants (general hardwood, species-agnostic).
const (
	// CoefficientBreakpointInches is the trunk diameter that separates the
	// two empirical regimes of the equation. Diameters strictly below it use
	// SmallTreeCoefficient; diameters at or above it use LargeTreeCoefficient.
	CoefficientBreakpointInches = 11.0

	// SmallTreeCoefficient applies to trunks narrower than 11 inches.
	SmallTreeCoefficient = 0.25

	// LargeTreeCoefficient applies to trunks of 11 inches or more.
	LargeTreeCoefficient = 0.15

	// RootMassFactor adds 20% below-ground (root) biomass to the
	// above-ground green weight.
	RootMassFactor = 1.2

	// DryWeightFraction removes moisture from green weight.
	DryWeightFraction = 0.725

	// CarbonFraction is the share of dry biomass that is carbon.
	CarbonFraction = 0.5
)

// Stoichiometry for converting captured carbon into CO2 mass.
const (
	CarbonAtomicWeight = 12.0
	OxygenAtomicWeight = 16.0

	// CO2MolecularWeight is one carbon atom plus two oxygen atoms (44).
	CO2MolecularWeight = CarbonAtomicWeight + 2*OxygenAtomicWeight

	// CO2ToCarbonRatio is the mass of CO2 per unit mass of carbon (44/12).
	CO2ToCarbonRatio = CO2MolecularWeight / CarbonAtomicWeight
)

// Population and organisation defaults.
const (
	// DefaultTreesPerForest is the number of trees planted in one tiny forest.
	DefaultTreesPerForest = 600

	// DefaultEmissionsPerCapitaKg is the average annual CO2e per employee (4.7 t).
	DefaultEmissionsPerCapitaKg = 4.7 * 1000

	// KgPerTon converts kilograms to metric tons for display.
	KgPerTon = 1000.0

	// PercentMultiplier turns a ratio into a percentage.
	PercentMultiplier = 100.0
)
