package tui

import "github.com/charmbracelet/lipgloss"

// Colour palette.
const (
	ColorHeader    = lipgloss.Color("#2E7D32")
	ColorBorder    = lipgloss.Color("#5F8B4C")
	ColorLabel     = lipgloss.Color("#A8A8A8")
	ColorValue     = lipgloss.Color("#FFFFFF")
	ColorMuted     = lipgloss.Color("#6C6C6C")
	ColorHighlight = lipgloss.Color("#81C784")
	ColorWarning   = lipgloss.Color("#FFB300")
	ColorCaptured  = lipgloss.Color("#43A047")
	ColorEmitted   = lipgloss.Color("#8D6E63")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	HeaderStyle  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	FocusedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().Padding(0, 2, 0, 0)
)
