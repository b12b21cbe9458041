package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/internal/greenops"
	"github.com/rshade/tinyforest/internal/tui"
)

// EstimateReport is the machine-readable form of an estimate.
type EstimateReport struct {
	Inputs             forest.Inputs      `json:"inputs" yaml:"inputs"`
	Assumptions        forest.Assumptions `json:"assumptions" yaml:"assumptions"`
	CapturedKgPerYear  float64            `json:"captured_kg_per_year" yaml:"captured_kg_per_year"`
	EmissionsKgPerYear float64            `json:"emissions_kg_per_year" yaml:"emissions_kg_per_year"`

	// CaptureRatio and CapturePercentage are null when there are no emissions.
	CaptureRatio      *float64 `json:"capture_ratio" yaml:"capture_ratio"`
	CapturePercentage *float64 `json:"capture_percentage" yaml:"capture_percentage"`

	Summary       []tui.SummaryRow            `json:"summary" yaml:"summary"`
	Breakdown     *forest.CaptureBreakdown    `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
	Equivalencies *greenops.EquivalencyOutput `json:"equivalencies,omitempty" yaml:"equivalencies,omitempty"`
}

// reportOptions select the optional report sections.
type reportOptions struct {
	explain           bool
	showEquivalencies bool
}

// newEstimateReport assembles a report from an estimate.
func newEstimateReport(
	in forest.Inputs,
	a forest.Assumptions,
	r forest.EstimationResult,
	opts reportOptions,
) EstimateReport {
	report := EstimateReport{
		Inputs:             in,
		Assumptions:        a,
		CapturedKgPerYear:  r.CapturedKgPerYear,
		EmissionsKgPerYear: r.EmissionsKgPerYear,
		Summary:            tui.SummaryRows(r),
	}
	if r.Ratio.Defined {
		ratio, pct := r.Ratio.Value, r.Ratio.Percentage
		report.CaptureRatio = &ratio
		report.CapturePercentage = &pct
	}
	if opts.explain {
		b := r.Capture
		report.Breakdown = &b
	}
	if opts.showEquivalencies {
		if eq, err := greenops.Calculate(r.CapturedKgPerYear); err == nil && !eq.IsEmpty {
			report.Equivalencies = &eq
		}
	}
	return report
}

// renderReportJSON writes the report as indented JSON.
func renderReportJSON(w io.Writer, report EstimateReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// renderReportYAML writes the report as YAML.
func renderReportYAML(w io.Writer, report EstimateReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// renderReportTable writes the summary table, bar chart and optional
// sections for a terminal or plain text.
func renderReportTable(w io.Writer, report EstimateReport, width int) error {
	var sb strings.Builder
	sb.WriteString(tui.RenderSummaryTable(report.Summary))
	sb.WriteString("\n\n")
	sb.WriteString(tui.RenderBarChart(report.CapturedKgPerYear, report.EmissionsKgPerYear, width))
	sb.WriteString("\n")

	if report.Equivalencies != nil {
		sb.WriteString("\n")
		sb.WriteString(report.Equivalencies.DisplayText)
		sb.WriteString("\n")
	}
	if report.Breakdown != nil {
		sb.WriteString("\n")
		sb.WriteString(tui.RenderBreakdownTable(*report.Breakdown))
		sb.WriteString("\n")
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}
