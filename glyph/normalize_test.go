package glyph

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var testInk = color.NRGBA{R: 20, G: 24, B: 82, A: 255}

// makeSample creates a synthetic handwriting sample: a white image with a
// solid black blob inset two pixels from each edge.
func makeSample(w, h int) *image.NRGBA {
	return makeSampleInk(w, h, 0)
}

// makeSampleInk is makeSample with a configurable ink gray level.
func makeSampleInk(w, h int, ink uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= 2 && x < w-2 && y >= 2 && y < h-2 {
				c = color.NRGBA{R: ink, G: ink, B: ink, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// inkPixels counts the opaque pixels in a glyph's mask.
func inkPixels(g *Glyph) int {
	count := 0
	for i := 3; i < len(g.Image.Pix); i += 4 {
		if g.Image.Pix[i] != 0 {
			count++
		}
	}
	return count
}

func TestNormalizeKeepsPureBlackInk(t *testing.T) {
	// A two-tone sample puts all its ink in the lowest occupied gray bin,
	// exactly where an Otsu cutoff with strict less-than semantics can
	// exclude it. Such samples must still normalize to a non-empty mask.
	n := NewNormalizer(50, testInk)

	g, err := n.Normalize(makeSampleInk(20, 30, 0), 'a')
	if err != nil {
		t.Fatalf("Normalize failed on black-on-white sample: %v", err)
	}
	if inkPixels(g) == 0 {
		t.Error("Black-on-white sample produced an all-transparent glyph")
	}
}

func TestNormalizeKeepsGrayInk(t *testing.T) {
	n := NewNormalizer(50, testInk)

	g, err := n.Normalize(makeSampleInk(20, 30, 100), 'a')
	if err != nil {
		t.Fatalf("Normalize failed on gray-ink sample: %v", err)
	}
	if inkPixels(g) == 0 {
		t.Error("Gray-ink sample produced an all-transparent glyph")
	}
}

func TestNormalizeHeightInvariant(t *testing.T) {
	n := NewNormalizer(50, testInk)
	sample := makeSample(20, 30)

	for _, char := range []rune{'.', 'f', 'g', 'a', '5', '\''} {
		g, err := n.Normalize(sample, char)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", char, err)
		}
		if g.Height() != 50 {
			t.Errorf("Normalize(%q) height = %d, want 50", char, g.Height())
		}
		if g.Width() < 1 {
			t.Errorf("Normalize(%q) width = %d, want >= 1", char, g.Width())
		}
	}
}

func TestNormalizePlacement(t *testing.T) {
	// stdSize 50: safe zone 46, baseline at 35. Expected tops follow the
	// placement rules: bottom on baseline for most classes (35 minus the
	// class height), descender top aligned with a short letter's top, and
	// quotes floating at round(0.15*50).
	tests := []struct {
		char    rune
		wantTop int
	}{
		{'.', 26},
		{'f', 5},
		{'g', 19},
		{'a', 19},
		{'5', 7},
		{'\'', 8},
		{'-', 26},
	}

	n := NewNormalizer(50, testInk)
	sample := makeSample(20, 30)

	for _, tt := range tests {
		g, err := n.Normalize(sample, tt.char)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", tt.char, err)
		}
		if g.Top != tt.wantTop {
			t.Errorf("Normalize(%q) top = %d, want %d", tt.char, g.Top, tt.wantTop)
		}
	}
}

func TestDescenderAlignsWithShortLetterTop(t *testing.T) {
	n := NewNormalizer(50, testInk)

	short, err := n.Normalize(makeSample(20, 30), 'a')
	if err != nil {
		t.Fatalf("Normalize('a') failed: %v", err)
	}
	descender, err := n.Normalize(makeSample(24, 36), 'y')
	if err != nil {
		t.Fatalf("Normalize('y') failed: %v", err)
	}

	if short.Top != descender.Top {
		t.Errorf("Descender top %d != short letter top %d", descender.Top, short.Top)
	}
}

func TestNormalizePreservesAspectRatio(t *testing.T) {
	// A 20x30 sample has a 16x26 ink box; padded it is 36x46. For a short
	// letter the target height is 16, so the width is round(16*36/46).
	n := NewNormalizer(50, testInk)

	g, err := n.Normalize(makeSample(20, 30), 'a')
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if g.Width() != 13 {
		t.Errorf("Width = %d, want 13", g.Width())
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := NewNormalizer(50, testInk)
	sample := makeSample(20, 30)

	first, err := n.Normalize(sample, 'a')
	if err != nil {
		t.Fatalf("first Normalize failed: %v", err)
	}
	second, err := n.Normalize(sample, 'a')
	if err != nil {
		t.Fatalf("second Normalize failed: %v", err)
	}

	if first.Top != second.Top || first.Width() != second.Width() {
		t.Fatal("Repeated normalization produced different geometry")
	}
	if !bytes.Equal(first.Image.Pix, second.Image.Pix) {
		t.Error("Repeated normalization produced different pixels")
	}
}

func TestNormalizeNoInkAboveTop(t *testing.T) {
	// Dilation grows strictly toward the bottom-right, so nothing may
	// appear above the placement offset.
	n := NewNormalizer(50, testInk)

	g, err := n.Normalize(makeSample(20, 30), 'f')
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	for y := 0; y < g.Top; y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Image.NRGBAAt(x, y).A != 0 {
				t.Fatalf("Found ink at (%d,%d), above top offset %d", x, y, g.Top)
			}
		}
	}
}

func TestNormalizeAppliesInkColor(t *testing.T) {
	ink := color.NRGBA{R: 0, G: 20, B: 100, A: 255}
	n := NewNormalizer(50, ink)

	g, err := n.Normalize(makeSample(20, 30), 'a')
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	found := false
	for i := 0; i < len(g.Image.Pix); i += 4 {
		if g.Image.Pix[i+3] == 0 {
			continue
		}
		found = true
		if g.Image.Pix[i] != ink.R || g.Image.Pix[i+1] != ink.G || g.Image.Pix[i+2] != ink.B {
			t.Fatalf("Ink pixel has color (%d,%d,%d), want (%d,%d,%d)",
				g.Image.Pix[i], g.Image.Pix[i+1], g.Image.Pix[i+2], ink.R, ink.G, ink.B)
		}
	}
	if !found {
		t.Error("Expected at least one ink pixel")
	}
}
