// Package glyph normalizes raw handwriting samples into fixed-height,
// baseline-aligned character cells ready for page composition.
//
// A sample is any decoded image of a single handwritten character, typically
// a photo or scan with dark ink on a light background. Normalization isolates
// the ink, scales it to a height appropriate for the character's class
// (ascender, descender, x-height, punctuation), positions it relative to a
// shared baseline, thickens the strokes to simulate ink flow, and returns an
// ink-colored cell whose alpha channel carries the ink mask.
package glyph
