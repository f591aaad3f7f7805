// Package layout arranges normalized glyph cells into lines of words on a
// page canvas.
//
// The composer keeps a pen cursor (horizontal) and a line cursor (vertical).
// Words are measured before they are painted, so a word that would cross the
// right margin wraps to the next line as a whole; words never split. The pen
// cursor resets on wrap and on newline; the line cursor only ever advances.
package layout

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/tsawler/scribe/glyph"
)

// Item is one piece of a word: a glyph cell plus its horizontal advance.
// A nil Glyph is a blank placeholder that still advances the pen, keeping
// character spacing intact for characters that could not be rendered.
type Item struct {
	Glyph *glyph.Glyph
	Width int
}

// Config holds the fixed geometry of one page composition.
type Config struct {
	// Width and Height are the page dimensions in pixels.
	Width, Height int

	// StartX is the left margin the pen returns to on wrap and newline.
	StartX int

	// StartY is the top margin where the first line begins.
	StartY int

	// MaxX is the right margin; a word ending past it wraps.
	MaxX int

	// LineHeight is the vertical advance per line.
	LineHeight int

	// SpaceWidth is the horizontal advance between words.
	SpaceWidth int
}

// DefaultConfig returns page geometry matching an A4-like page at roughly
// 300 DPI with generous margins.
func DefaultConfig() Config {
	return Config{
		Width:      2480,
		Height:     3508,
		StartX:     200,
		StartY:     200,
		MaxX:       2200,
		LineHeight: 65,
		SpaceWidth: 20,
	}
}

// Composer paints glyph cells onto a page while tracking cursor state.
type Composer struct {
	// Page is the canvas being composed. It is owned by the Composer
	// until composition ends; treat it as read-only afterwards.
	Page *image.RGBA

	cfg  Config
	x, y int
}

// NewComposer allocates an opaque white page and places the pen at the
// top-left margin.
func NewComposer(cfg Config) *Composer {
	page := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Composer{
		Page: page,
		cfg:  cfg,
		x:    cfg.StartX,
		y:    cfg.StartY,
	}
}

// WordWidth sums the advances of a word's items.
func WordWidth(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Width
	}
	return total
}

// PlaceWord paints one word at the pen position. If the word would end past
// the right margin, the pen wraps to a new line first; the wrap decision is
// made once for the whole word. Each item's glyph (if any) is composited at
// the pen position, and the pen always advances by the item's width, glyph
// or not.
func (c *Composer) PlaceWord(items []Item) {
	if c.x+WordWidth(items) > c.cfg.MaxX {
		c.x = c.cfg.StartX
		c.y += c.cfg.LineHeight
	}

	for _, it := range items {
		if it.Glyph != nil {
			r := image.Rect(c.x, c.y, c.x+it.Glyph.Width(), c.y+it.Glyph.Height())
			draw.Draw(c.Page, r, it.Glyph.Image, image.Point{}, draw.Over)
		}
		c.x += it.Width
	}
}

// Space advances the pen by one inter-word space.
func (c *Composer) Space() {
	c.x += c.cfg.SpaceWidth
}

// Newline returns the pen to the left margin and advances the line cursor,
// unconditionally: an empty input line leaves a blank band on the page.
func (c *Composer) Newline() {
	c.x = c.cfg.StartX
	c.y += c.cfg.LineHeight
}

// Cursor returns the current pen position.
func (c *Composer) Cursor() (x, y int) {
	return c.x, c.y
}
