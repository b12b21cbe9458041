package forest

// FeetFromMeters converts a length in metres to feet.
func FeetFromMeters(m float64) float64 {
	return m / FootToMeters
}

// InchesFromCm converts a length in centimetres to inches.
//
// Tree diameters are always taken in centimetres at every public interface
// and converted here, once. This is the same as (cm/100)/0.0254.
func InchesFromCm(cm float64) float64 {
	return cm / CentimetersPerInch
}

// KgFromPounds converts a mass in pounds to kilograms.
func KgFromPounds(lb float64) float64 {
	return lb * PoundToKg
}
