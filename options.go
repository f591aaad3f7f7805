package scribe

import "image/color"

// renderOptions holds configuration for one composition run.
type renderOptions struct {
	// Ink and glyph geometry
	ink         color.NRGBA
	glyphSize   int // normalized cell height in pixels
	lineHeight  int
	charSpacing int

	// Page geometry
	pageWidth  int
	pageHeight int
	startX     int
	maxX       int
	startY     int

	// DOCX embedding
	pictureWidth float64 // inches

	// Randomness
	seed   int64
	seeded bool
}

// defaultOptions returns the default rendering options: an A4-like page at
// roughly 300 DPI, dark blue ink, and time-seeded sample selection.
func defaultOptions() renderOptions {
	return renderOptions{
		ink:          color.NRGBA{R: 20, G: 24, B: 82, A: 255},
		glyphSize:    50,
		lineHeight:   65,
		charSpacing:  2,
		pageWidth:    2480,
		pageHeight:   3508,
		startX:       200,
		maxX:         2200,
		startY:       200,
		pictureWidth: 7.5,
	}
}

// clone creates a copy of renderOptions. The struct holds no reference
// types, so a value copy suffices; the method exists so the renderer's
// chain methods read the same as the rest of the API.
func (o renderOptions) clone() renderOptions {
	return o
}

// spaceWidth is the horizontal advance between words.
func (o renderOptions) spaceWidth() int {
	return int(float64(o.glyphSize) * 0.4)
}

// fallbackWidth is the gap left for a character that could not be rendered.
func (o renderOptions) fallbackWidth() int {
	return int(float64(o.glyphSize) * 0.5)
}
