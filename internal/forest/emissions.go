package forest

// EstimateEmployeeEmissions returns the annual CO2e emitted by the
// organisation's headcount, in kg.
func EstimateEmployeeEmissions(org OrganizationParameters) float64 {
	return float64(org.EmployeeCount) * org.EmissionsPerCapitaKg
}
