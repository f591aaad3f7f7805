package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/ernyoke/imger/threshold"
)

// Tuning constants for the normalization pipeline. Like the class height
// ratios, these are part of the rendering contract.
const (
	// minRegionArea is the area in px² below which an ink region is
	// treated as noise.
	minRegionArea = 10

	// cropPadding is the constant background border added around the
	// cropped ink before resizing, so resizing and dilation never erode
	// ink touching the crop edge.
	cropPadding = 10

	// cellMargin is the vertical margin reserved inside a cell; the rest
	// is the safe zone glyphs scale into.
	cellMargin = 4

	// dilateIterations is the number of ink-flow dilation passes.
	dilateIterations = 2

	// inkCutoff re-binarizes the mask after dilation to keep edges crisp.
	inkCutoff = 127

	// midCutoff is the fixed binarization cutoff used when Otsu yields
	// an empty mask.
	midCutoff = 128

	// baselineRatio positions the baseline within a cell, leaving the
	// space below it for descender tails.
	baselineRatio = 0.70

	// quoteTopRatio positions quote marks near cap height, well above
	// the baseline.
	quoteTopRatio = 0.15
)

// ErrNoInk is returned when thresholding a sample yields no foreground
// regions at all, i.e. the image contains nothing recognizable as ink.
var ErrNoInk = errors.New("no ink regions found in sample")

// Normalizer converts raw handwriting samples into fixed-height Glyph cells.
// It is deterministic: normalizing the same sample with the same character
// twice yields identical output.
type Normalizer struct {
	// StdSize is the cell height in pixels. All returned glyphs have
	// exactly this height.
	StdSize int

	// Ink is the color applied to every ink pixel.
	Ink color.NRGBA
}

// NewNormalizer creates a Normalizer producing cells of the given height,
// colored with the given ink.
func NewNormalizer(stdSize int, ink color.NRGBA) *Normalizer {
	return &Normalizer{StdSize: stdSize, Ink: ink}
}

// Normalize converts one raw sample of char into a Glyph.
//
// The pipeline: grayscale conversion, inverse Otsu binarization (ink
// becomes foreground), noise-filtered ink region detection, crop to the ink
// bounding box, constant padding, class-based resize into the cell's safe
// zone, baseline placement, ink-flow dilation, and ink colorization.
//
// Returns ErrNoInk when thresholding finds no foreground at all.
func (n *Normalizer) Normalize(src image.Image, char rune) (*Glyph, error) {
	gray := toGray(src)

	bin, err := threshold.OtsuThreshold(gray, threshold.ThreshBinaryInv)
	if err != nil {
		return nil, fmt.Errorf("thresholding sample: %w", err)
	}

	regions := findRegions(bin)
	if len(regions) == 0 {
		// The inverse threshold keeps pixels strictly below the cutoff,
		// so ink occupying the lowest occupied bin (pre-binarized black
		// on white) vanishes when Otsu lands on that bin. Retry with the
		// fixed midpoint cutoff before declaring the sample empty.
		bin, err = threshold.Threshold(gray, midCutoff, threshold.ThreshBinaryInv)
		if err != nil {
			return nil, fmt.Errorf("thresholding sample: %w", err)
		}
		regions = findRegions(bin)
	}

	box, ok := inkBounds(regions)
	if !ok {
		return nil, ErrNoInk
	}

	padded := cropPad(bin, box, cropPadding)

	class := Classify(char)
	safeZone := n.StdSize - cellMargin
	newH := round(class.heightRatio() * float64(safeZone))
	if newH < 1 {
		newH = 1
	}

	pb := padded.Bounds()
	aspect := float64(pb.Dx()) / float64(pb.Dy())
	newW := round(float64(newH) * aspect)
	if newW < 1 {
		newW = 1
	}

	mask := resizeGray(padded, newW, newH)

	top := n.placement(char, class, newH, safeZone)
	cell := image.NewGray(image.Rect(0, 0, newW, n.StdSize))
	draw.Draw(cell, image.Rect(0, top, newW, top+newH), mask, image.Point{}, draw.Src)

	cell = dilate(cell, dilateIterations)
	cell, err = threshold.Threshold(cell, inkCutoff, threshold.ThreshBinary)
	if err != nil {
		return nil, fmt.Errorf("re-binarizing mask: %w", err)
	}

	return n.colorize(cell, class, top), nil
}

// placement computes the vertical offset of a scaled sample within its cell.
//
// Most characters sit with their bottom on the baseline. Dots and commas do
// too, but their tiny height keeps them low. Quote marks float near cap
// height and ignore the baseline. Descenders are top-aligned to where a
// short letter's top would be, so their tails hang below the baseline into
// the space the baseline ratio reserves.
func (n *Normalizer) placement(char rune, class Class, h, safeZone int) int {
	baseline := round(baselineRatio * float64(n.StdSize))

	var top int
	switch {
	case char == '.' || char == ',':
		top = baseline - h
	case char == '\'' || char == '"' || char == '`':
		top = round(quoteTopRatio * float64(n.StdSize))
	case class == Descender:
		top = baseline - round(Short.heightRatio()*float64(safeZone))
	default:
		top = baseline - h
	}

	// Safety clamp; the ratios above keep placement in range already.
	if top < 0 {
		top = 0
	}
	if top+h > n.StdSize {
		top = n.StdSize - h
	}
	return top
}

// colorize turns a binary mask into an ink-colored cell with the mask as
// its alpha channel.
func (n *Normalizer) colorize(mask *image.Gray, class Class, top int) *Glyph {
	b := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			out.SetNRGBA(x, y, color.NRGBA{R: n.Ink.R, G: n.Ink.G, B: n.Ink.B, A: a})
		}
	}
	return &Glyph{Image: out, Class: class, Top: top}
}

// toGray converts any image to zero-based grayscale.
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray
}

// cropPad copies the given box out of a mask and surrounds it with a
// constant background border of pad pixels on every side. The box is in
// the coordinate space of findRegions, relative to the mask's origin.
func cropPad(mask *image.Gray, box image.Rectangle, pad int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, box.Dx()+2*pad, box.Dy()+2*pad))
	src := box.Min.Add(mask.Bounds().Min)
	draw.Draw(out, image.Rect(pad, pad, pad+box.Dx(), pad+box.Dy()), mask, src, draw.Src)
	return out
}

// resizeGray scales a grayscale mask to the given size using box filtering
// (area averaging), then flattens the result back to grayscale.
func resizeGray(src *image.Gray, w, h int) *image.Gray {
	resized := imaging.Resize(src, w, h, imaging.Box)
	out := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), resized, image.Point{}, draw.Src)
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
