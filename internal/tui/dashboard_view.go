package tui

import (
	"errors"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/internal/greenops"
	"github.com/rshade/tinyforest/internal/methodology"
)

// DashboardTitle is shown at the top of the dashboard.
const DashboardTitle = "Tiny Forests Carbon Capture Calculator"

const (
	sliderWidth = 30
	// sideBySideWidth is the terminal width at which inputs and results are
	// laid out in two columns.
	sideBySideWidth = 110
	focusMarker     = "›"

	sliderFilled = "━"
	sliderEmpty  = "─"
	sliderKnob   = "●"
)

// View renders the current view.
func (m *DashboardModel) View() string {
	if m.state == DashboardStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(DashboardTitle))
	sb.WriteString("\n\n")

	inputs := PanelStyle.Render(m.renderInputs())
	results := m.renderResults()
	if m.width >= sideBySideWidth {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, inputs, results))
	} else {
		sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, inputs, "", results))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.renderMethodology())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderInputs draws every input as a label, a number field and a slider.
func (m *DashboardModel) renderInputs() string {
	var sb strings.Builder
	for i, b := range config.InputBounds() {
		if i > 0 {
			sb.WriteString("\n")
		}
		focused := b.Key == m.focused

		marker := " "
		label := LabelStyle.Render(b.Label)
		if focused {
			marker = FocusedStyle.Render(focusMarker)
			label = FocusedStyle.Render(b.Label)
		}
		sb.WriteString(marker + " " + label + "\n")

		value := m.inputs.Value(b.Key)
		field := ValueStyle.Render(padRight(b.Format(value), numberFieldWidth))
		if focused && m.state == DashboardStateEditing {
			field = m.numberInput.View()
		}
		sb.WriteString("  [" + field + "] " + RenderSlider(b, value, sliderWidth) + "\n")

		if focused && m.editErr != "" {
			sb.WriteString("  " + lipgloss.NewStyle().Foreground(ColorWarning).Render(m.editErr) + "\n")
		}
	}
	return sb.String()
}

// renderResults draws the summary table, bar chart and equivalency line, or
// the age warning.
func (m *DashboardModel) renderResults() string {
	if errors.Is(m.err, forest.ErrInvalidAge) {
		return RenderAgeWarning()
	}
	if m.err != nil {
		return WarningStyle.Render("Error: " + m.err.Error())
	}

	width := m.width
	if m.width >= sideBySideWidth {
		width = m.width / 2
	}

	parts := []string{
		RenderSummaryTable(SummaryRows(m.result)),
		"",
		RenderBarChart(m.result.CapturedKgPerYear, m.result.EmissionsKgPerYear, width),
	}
	if m.showEquivalencies {
		if line := EquivalencyLine(m.result.CapturedKgPerYear); line != "" {
			parts = append(parts, "", MutedStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMethodology draws the expanded pane or its collapsed heading.
func (m *DashboardModel) renderMethodology() string {
	if !m.showMethodology {
		return MutedStyle.Render("▸ " + methodology.Title + " (m)")
	}
	header := HeaderStyle.Render("▾ " + methodology.Title)
	footer := MutedStyle.Render("↑/↓ scroll · m/esc close")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.methodology.View(), footer)
}

// RenderSlider draws a horizontal track with a knob at v's position.
func RenderSlider(b config.InputBound, v float64, width int) string {
	if width < 1 {
		return ""
	}
	pos := SliderPosition(b, v, width)
	return lipgloss.NewStyle().Foreground(ColorHighlight).Render(strings.Repeat(sliderFilled, pos)) +
		sliderKnob +
		MutedStyle.Render(strings.Repeat(sliderEmpty, width-1-pos))
}

// SliderPosition returns the knob cell, from 0 to width-1.
func SliderPosition(b config.InputBound, v float64, width int) int {
	if b.Max <= b.Min || width < 1 {
		return 0
	}
	frac := (v - b.Min) / (b.Max - b.Min)
	pos := int(math.Round(frac * float64(width-1)))
	return max(0, min(width-1, pos))
}

// EquivalencyLine describes capturedKg in everyday terms, or returns "" when
// the quantity is too small to be meaningful.
func EquivalencyLine(capturedKg float64) string {
	out, err := greenops.Calculate(capturedKg)
	if err != nil || out.IsEmpty {
		return ""
	}
	return out.DisplayText
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
