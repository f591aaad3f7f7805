package glyph

import "unicode"

// Class categorizes a character for sizing and baseline placement.
type Class int

const (
	// Default covers characters outside the other classes (digits,
	// uppercase letters, most symbols).
	Default Class = iota
	// SmallPunctuation covers marks much smaller than a letter body.
	SmallPunctuation
	// TallAscender covers lowercase letters that rise above x-height.
	TallAscender
	// Descender covers lowercase letters whose tail hangs below the baseline.
	Descender
	// Short covers lowercase letters confined to x-height.
	Short
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case SmallPunctuation:
		return "small-punctuation"
	case TallAscender:
		return "tall-ascender"
	case Descender:
		return "descender"
	case Short:
		return "short"
	default:
		return "default"
	}
}

// heightRatio is the fraction of the safe zone a glyph of this class
// scales to. The ratios are tuned by inspection against real sample sets;
// they are part of the rendering contract, not derived from font metrics.
func (c Class) heightRatio() float64 {
	switch c {
	case SmallPunctuation:
		return 0.20
	case TallAscender:
		return 0.65
	case Descender:
		return 0.65
	case Short:
		return 0.35
	default:
		return 0.60
	}
}

// Membership sets for lowercase characters.
const (
	smallPunctChars = ".,'\"`-"
	tallChars       = "ftbdhkl"
	descenderChars  = "gjpqy"
	shortChars      = "aceimnorsuvwxz"
)

var classOf = map[rune]Class{}

func init() {
	for _, r := range smallPunctChars {
		classOf[r] = SmallPunctuation
	}
	for _, r := range tallChars {
		classOf[r] = TallAscender
	}
	for _, r := range descenderChars {
		classOf[r] = Descender
	}
	for _, r := range shortChars {
		classOf[r] = Short
	}
}

// Classify maps a character to its Class. Classification is
// case-insensitive: samples for uppercase letters are normalized the same
// way as their lowercase forms.
func Classify(char rune) Class {
	if c, ok := classOf[unicode.ToLower(char)]; ok {
		return c
	}
	return Default
}
