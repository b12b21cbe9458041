// Package methodology holds the document that explains how the estimate is
// calculated. The CLI prints it and the dashboard shows it in a pane.
package methodology

import (
	_ "embed"
)

// Title is the heading of the expandable methodology pane.
const Title = "See details of the project and calculation methodology"

//go:embed methodology.md
var document string

// Document returns the methodology text verbatim.
func Document() string {
	return document
}
