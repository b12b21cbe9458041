package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/tinyforest/internal/forest"
)

// Summary table labels.
const (
	MetricCaptured   = "Total carbon emissions captured"
	MetricEmitted    = "Total carbon emissions by employees"
	MetricProportion = "Proportion of carbon emissions captured"

	summaryHeaderMetric = "Metrics"
	summaryHeaderValue  = "Values"
)

// Bar chart labels.
const (
	BarCaptured = "Emissions captured"
	BarEmitted  = "Emissions created"
)

// AgeWarning replaces the results while the tree age is zero.
const AgeWarning = "Please enter a non-zero age for the tree."

const (
	barRune        = "█"
	minBarWidth    = 10
	barLabelWidth  = len(BarCaptured)
	barValueMargin = 16
)

// SummaryRow is one line of the results table.
type SummaryRow struct {
	Metric string `json:"metric" yaml:"metric"`
	Value  string `json:"value" yaml:"value"`
}

// SummaryRows returns the three result rows in display order.
func SummaryRows(r forest.EstimationResult) []SummaryRow {
	return []SummaryRow{
		{Metric: MetricCaptured, Value: forest.FormatKilotons(r.CapturedKgPerYear) + " tCO2/year"},
		{Metric: MetricEmitted, Value: forest.FormatKilotons(r.EmissionsKgPerYear) + " tCO2e/year"},
		{Metric: MetricProportion, Value: forest.FormatPercent(r.Ratio)},
	}
}

// RenderSummaryTable draws the rows as a bordered two-column table.
func RenderSummaryTable(rows []SummaryRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(summaryHeaderMetric, summaryHeaderValue).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range rows {
		t.Row(r.Metric, r.Value)
	}
	return t.String()
}

// RenderBarChart draws two horizontal bars scaled to the larger of captured
// and emitted. width is the total width available to the chart.
func RenderBarChart(capturedKg, emittedKg float64, width int) string {
	barWidth := width - barLabelWidth - barValueMargin
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	peak := math.Max(capturedKg, emittedKg)
	capturedStyle := lipgloss.NewStyle().Foreground(ColorCaptured)
	emittedStyle := lipgloss.NewStyle().Foreground(ColorEmitted)

	var sb strings.Builder
	sb.WriteString(renderBar(BarCaptured, capturedKg, peak, barWidth, capturedStyle))
	sb.WriteString("\n")
	sb.WriteString(renderBar(BarEmitted, emittedKg, peak, barWidth, emittedStyle))
	return sb.String()
}

// BarLength returns the number of cells a bar of value occupies when peak
// fills width cells.
func BarLength(value, peak float64, width int) int {
	if !(peak > 0) || !(value > 0) || math.IsInf(value, 0) {
		return 0
	}
	n := int(math.Round(value / peak * float64(width)))
	return max(0, min(width, n))
}

func renderBar(label string, value, peak float64, width int, style lipgloss.Style) string {
	n := BarLength(value, peak, width)
	bar := style.Render(strings.Repeat(barRune, n))
	pad := strings.Repeat(" ", width-n)
	return fmt.Sprintf("%-*s %s%s %s t", barLabelWidth, label, bar, pad, forest.FormatKilotons(value))
}

// RenderAgeWarning renders AgeWarning in a warning box.
func RenderAgeWarning() string {
	return WarningStyle.Render(AgeWarning)
}
