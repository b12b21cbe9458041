package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode describes what the attached terminal can do.
type OutputMode int

const (
	// OutputModePlain is used when stdout is not a terminal (pipes, files, CI).
	OutputModePlain OutputMode = iota
	// OutputModeStyled is used when stdout is a terminal but stdin is not,
	// so static styled output is possible but interaction is not.
	OutputModeStyled
	// OutputModeInteractive is used when both stdin and stdout are terminals.
	OutputModeInteractive
)

// defaultTerminalWidth is assumed when the width cannot be read.
const defaultTerminalWidth = 80

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DetectOutputMode inspects stdin and stdout.
func DetectOutputMode(in, out *os.File) OutputMode {
	if !IsTerminal(out) {
		return OutputModePlain
	}
	if !IsTerminal(in) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of f, or 80 when it is not a terminal.
func TerminalWidth(f *os.File) int {
	if !IsTerminal(f) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
