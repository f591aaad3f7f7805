package glyph

import "image"

// Glyph is a normalized character cell. The image has a fixed height equal
// to the normalizer's StdSize and a width determined by the sample's aspect
// ratio. Every pixel carries the configured ink color; the alpha channel is
// the binary ink mask, so the cell composites cleanly over any background.
type Glyph struct {
	// Image is the ink-colored, alpha-masked cell.
	Image *image.NRGBA

	// Class is the classification the cell was sized and placed with.
	Class Class

	// Top is the vertical offset at which the scaled sample was placed
	// within the cell, measured from the cell's top edge.
	Top int
}

// Width returns the cell width in pixels.
func (g *Glyph) Width() int {
	return g.Image.Bounds().Dx()
}

// Height returns the cell height in pixels.
func (g *Glyph) Height() int {
	return g.Image.Bounds().Dy()
}
