// Package store resolves characters to handwriting sample images.
//
// A sample library holds one collection per character, each containing any
// number of sample images of that character. Collections are keyed by a
// canonical name: the character itself, lower-cased, or a symbolic name for
// characters that are unsafe as directory names (e.g. "." maps to "dot").
package store

import (
	"errors"
	"image"
	"strings"
)

// Store is a source of handwriting samples.
type Store interface {
	// Candidates returns identifiers for the available samples of char.
	// An empty slice means the character has no samples; that is not an
	// error. Errors indicate the store itself could not be consulted.
	Candidates(char rune) ([]string, error)

	// Load decodes the sample with the given identifier, as previously
	// returned by Candidates.
	Load(id string) (image.Image, error)
}

// ErrUnknownSample is returned by Load for an identifier the store does
// not recognize.
var ErrUnknownSample = errors.New("unknown sample identifier")

// specialNames maps characters that are unsafe as directory names to
// symbolic collection names.
var specialNames = map[rune]string{
	'.':  "dot",
	'"':  "quote",
	':':  "colon",
	'?':  "question",
	'*':  "asterisk",
	'/':  "slash",
	'\\': "backslash",
	'<':  "lt",
	'>':  "gt",
	'|':  "pipe",
	',':  "comma",
	'\'': "apostrophe",
}

// FolderName returns the canonical collection name for a character.
func FolderName(char rune) string {
	if name, ok := specialNames[char]; ok {
		return name
	}
	return strings.ToLower(string(char))
}
