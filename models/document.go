package models

import "cartoes-materiais/layout"

// RenderMode selects the outer wrapping chrome of the rendered document.
// It never affects per-card geometry
type RenderMode string

const (
	// ModeInteractive adds viewer chrome for in-browser preview
	ModeInteractive RenderMode = "interactive"
	// ModePrint is the bare layout handed to the rasterizer
	ModePrint RenderMode = "print"
)

// Card is one cell's content in the built document. Text fields are stored
// already fitted and escaped, ready for embedding in markup
type Card struct {
	Placeholder bool
	CompanyName string
	Name        string
	Code        string
	QRData      string // data URI; empty = unavailable placeholder
}

// DocumentPage is one physical sheet's worth of cards. Every page carries
// exactly CellsPerPage cards; the final page is padded with placeholders
type DocumentPage struct {
	Index int
	Logo  string // data URI; only ever set on page 0
	Cards []Card
}

// Document is the fully resolved, render-ready structural tree. It holds no
// markup; serialization to a particular syntax happens at the render boundary
type Document struct {
	Mode     RenderMode
	Layout   LayoutConfig
	Geometry layout.CellGeometry
	Pages    []DocumentPage
}
