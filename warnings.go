package scribe

import (
	"fmt"
	"strings"
)

// WarningKind classifies non-fatal degradations encountered while
// rendering. Every kind results in the same visible outcome: a blank
// placeholder of fixed width where the character's ink would be.
type WarningKind int

const (
	// WarnNoSamples indicates the sample library has no collection, or
	// an empty collection, for a character.
	WarnNoSamples WarningKind = iota

	// WarnDecodeFailed indicates a sample file could not be decoded.
	WarnDecodeFailed

	// WarnNoInk indicates a sample decoded but thresholding found no ink
	// in it.
	WarnNoInk
)

// String returns a string representation of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnNoSamples:
		return "no samples"
	case WarnDecodeFailed:
		return "decode failed"
	case WarnNoInk:
		return "no ink"
	default:
		return "unknown"
	}
}

// Warning records one character occurrence that rendered as a blank
// placeholder instead of ink. Warnings never abort a page; they exist so
// callers can report gaps in their sample libraries.
type Warning struct {
	// Kind is the category of degradation.
	Kind WarningKind

	// Char is the character that could not be rendered.
	Char rune

	// Detail describes the underlying cause, when known.
	Detail string
}

// String returns a human-readable description of the warning.
func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%q: %s", w.Char, w.Kind)
	}
	return fmt.Sprintf("%q: %s (%s)", w.Char, w.Kind, w.Detail)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
