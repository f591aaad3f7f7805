package scribe

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scribe/docx"
	"github.com/tsawler/scribe/format"
	"github.com/tsawler/scribe/glyph"
	"github.com/tsawler/scribe/layout"
	"github.com/tsawler/scribe/store"
)

// Renderer provides a fluent interface for composing handwriting pages.
// Each configuration method returns a new Renderer instance, making it
// safe for concurrent use and allowing method chaining.
type Renderer struct {
	// Source
	samplesDir string
	store      store.Store

	// Configuration
	options renderOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Renderer with copied options.
// This ensures immutability - each chain method returns a new instance.
func (r *Renderer) clone() *Renderer {
	return &Renderer{
		samplesDir: r.samplesDir,
		store:      r.store,
		options:    r.options.clone(),
		err:        r.err,
	}
}

// ============================================================================
// Configuration (chainable, each returns a new Renderer)
// ============================================================================

// InkColor sets the RGB ink color glyphs are rendered with.
func (r *Renderer) InkColor(red, green, blue uint8) *Renderer {
	c := r.clone()
	c.options.ink.R = red
	c.options.ink.G = green
	c.options.ink.B = blue
	return c
}

// GlyphSize sets the normalized glyph cell height in pixels. Values this
// close to the reserved cell margin leave no room for ink, so sizes of
// 8 px or less are rejected.
func (r *Renderer) GlyphSize(px int) *Renderer {
	c := r.clone()
	if px <= 8 {
		c.err = fmt.Errorf("glyph size must be greater than 8px, got %d", px)
		return c
	}
	c.options.glyphSize = px
	return c
}

// LineHeight sets the vertical advance per line, in pixels.
func (r *Renderer) LineHeight(px int) *Renderer {
	c := r.clone()
	if px <= 0 {
		c.err = fmt.Errorf("line height must be positive, got %d", px)
		return c
	}
	c.options.lineHeight = px
	return c
}

// CharSpacing sets the fixed spacing added after each glyph, in pixels.
func (r *Renderer) CharSpacing(px int) *Renderer {
	c := r.clone()
	if px < 0 {
		c.err = fmt.Errorf("character spacing must not be negative, got %d", px)
		return c
	}
	c.options.charSpacing = px
	return c
}

// Margins sets the left margin, right margin, and top margin in pixels.
func (r *Renderer) Margins(startX, maxX, startY int) *Renderer {
	c := r.clone()
	if maxX <= startX {
		c.err = fmt.Errorf("right margin (%d) must exceed left margin (%d)", maxX, startX)
		return c
	}
	c.options.startX = startX
	c.options.maxX = maxX
	c.options.startY = startY
	return c
}

// PageSize sets the page dimensions in pixels.
func (r *Renderer) PageSize(width, height int) *Renderer {
	c := r.clone()
	if width <= 0 || height <= 0 {
		c.err = fmt.Errorf("page size must be positive, got %dx%d", width, height)
		return c
	}
	c.options.pageWidth = width
	c.options.pageHeight = height
	return c
}

// Seed fixes the random source used for sample selection, making output
// reproducible. Without it, each run picks a time-based seed.
func (r *Renderer) Seed(seed int64) *Renderer {
	c := r.clone()
	c.options.seed = seed
	c.options.seeded = true
	return c
}

// ============================================================================
// Terminal Operations (execute composition and return results)
// ============================================================================

// Render composes the text into a page image.
//
// Returns the page, any warnings encountered during composition, and an
// error if rendering could not start at all. Warnings indicate non-fatal
// degradations: each character that had no usable sample rendered as a
// blank gap of fixed width and produced one warning.
//
// Example:
//
//	page, warnings, err := scribe.New("my_letters").Render(text)
//	if len(warnings) > 0 {
//	    log.Println("Degraded characters:", scribe.FormatWarnings(warnings))
//	}
func (r *Renderer) Render(text string) (*image.RGBA, []Warning, error) {
	if r.err != nil {
		return nil, nil, r.err
	}

	st, err := r.sampleStore()
	if err != nil {
		return nil, nil, err
	}

	normalizer := glyph.NewNormalizer(r.options.glyphSize, r.options.ink)

	seed := r.options.seed
	if !r.options.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	composer := layout.NewComposer(layout.Config{
		Width:      r.options.pageWidth,
		Height:     r.options.pageHeight,
		StartX:     r.options.startX,
		StartY:     r.options.startY,
		MaxX:       r.options.maxX,
		LineHeight: r.options.lineHeight,
		SpaceWidth: r.options.spaceWidth(),
	})

	var warnings []Warning

	// NFC so decomposed code points resolve to the same sample
	// collections as their composed forms.
	for _, line := range strings.Split(norm.NFC.String(text), "\n") {
		for _, word := range strings.Split(line, " ") {
			items := make([]layout.Item, 0, len(word))
			for _, char := range word {
				item, warn := r.renderChar(st, normalizer, rng, char)
				if warn != nil {
					warnings = append(warnings, *warn)
				}
				items = append(items, item)
			}
			composer.PlaceWord(items)
			composer.Space()
		}
		composer.Newline()
	}

	return composer.Page, warnings, nil
}

// RenderTo composes the text and writes the result to dest. The
// destination extension selects the output format: .png and .jpg/.jpeg
// save the page as an image; .docx embeds it in a Word document with
// fixed margins and picture width.
//
// Example:
//
//	warnings, err := scribe.New("my_letters").RenderTo(text, "homework.docx")
func (r *Renderer) RenderTo(text, dest string) ([]Warning, error) {
	page, warnings, err := r.Render(text)
	if err != nil {
		return warnings, err
	}

	switch format.Detect(dest) {
	case format.DOCX:
		if err := docx.Save(dest, page, r.options.pictureWidth); err != nil {
			return warnings, fmt.Errorf("writing DOCX: %w", err)
		}
	case format.PNG, format.JPEG:
		if err := imaging.Save(page, dest); err != nil {
			return warnings, fmt.Errorf("saving page image: %w", err)
		}
	default:
		return warnings, fmt.Errorf("unsupported output format for %q", dest)
	}

	return warnings, nil
}

// ============================================================================
// Internals
// ============================================================================

// sampleStore returns the configured store, constructing a DirStore from
// the samples directory when none was injected.
func (r *Renderer) sampleStore() (store.Store, error) {
	if r.store != nil {
		return r.store, nil
	}
	if r.samplesDir == "" {
		return nil, fmt.Errorf("no sample source configured")
	}
	return store.NewDirStore(r.samplesDir), nil
}

// renderChar produces the layout item for one character: a normalized
// glyph from a randomly chosen sample, or a blank placeholder of fallback
// width when no sample is usable. Failures degrade to the placeholder and
// a warning; they never abort the page and are never retried with another
// sample.
func (r *Renderer) renderChar(st store.Store, normalizer *glyph.Normalizer, rng *rand.Rand, char rune) (layout.Item, *Warning) {
	blank := layout.Item{Width: r.options.fallbackWidth()}

	ids, err := st.Candidates(char)
	if err != nil {
		return blank, &Warning{Kind: WarnNoSamples, Char: char, Detail: err.Error()}
	}
	if len(ids) == 0 {
		return blank, &Warning{Kind: WarnNoSamples, Char: char}
	}

	img, err := st.Load(ids[rng.Intn(len(ids))])
	if err != nil {
		return blank, &Warning{Kind: WarnDecodeFailed, Char: char, Detail: err.Error()}
	}

	g, err := normalizer.Normalize(img, char)
	if err != nil {
		kind := WarnDecodeFailed
		if errors.Is(err, glyph.ErrNoInk) {
			kind = WarnNoInk
		}
		return blank, &Warning{Kind: kind, Char: char, Detail: err.Error()}
	}

	return layout.Item{Glyph: g, Width: g.Width() + r.options.charSpacing}, nil
}
