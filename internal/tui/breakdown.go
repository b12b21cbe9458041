package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/tinyforest/internal/forest"
)

// BreakdownRows lists the intermediate values of a capture estimate as
// step, value pairs in calculation order.
func BreakdownRows(b forest.CaptureBreakdown) [][]string {
	return [][]string{
		{"Height", fmt.Sprintf("%.2f ft", b.HeightFt)},
		{"Diameter", fmt.Sprintf("%.2f in", b.DiameterIn)},
		{"Coefficient", fmt.Sprintf("%.2f", b.Coefficient)},
		{"Green weight above ground", fmt.Sprintf("%.2f lb (%.2f kg)", b.GreenWeightAboveLb, b.GreenWeightAboveKg)},
		{"Green weight total", fmt.Sprintf("%.2f kg", b.GreenWeightTotalKg)},
		{"Dry weight", fmt.Sprintf("%.2f kg", b.DryWeightKg)},
		{"Carbon", fmt.Sprintf("%.2f kg", b.CarbonKg)},
		{"CO2 sequestered per tree", fmt.Sprintf("%.2f kg", b.LifetimeCO2Kg)},
		{"CO2 per tree per year", fmt.Sprintf("%.2f kg", b.AnnualCO2PerTreeKg)},
		{
			fmt.Sprintf("CO2 per forest per year (%d trees)", b.TreesPerForest),
			fmt.Sprintf("%.2f kg", b.AnnualCO2PerForestKg),
		},
		{
			fmt.Sprintf("CO2 per year, %d forests", b.ForestCount),
			fmt.Sprintf("%.2f kg", b.TotalAnnualCO2Kg),
		},
	}
}

// RenderBreakdownTable draws BreakdownRows as a bordered table.
func RenderBreakdownTable(b forest.CaptureBreakdown) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers("Step", "Value").
		Rows(BreakdownRows(b)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
