// Package scribe synthesizes handwriting-styled page images from libraries
// of per-character ink samples.
//
// A sample library is a directory with one folder per character, each
// holding any number of scanned or photographed samples of that character.
// Rendering normalizes a randomly chosen sample for every character of the
// input text and lays the results out into word-wrapped lines on a page.
//
// Basic usage:
//
//	warnings, err := scribe.New("my_letters").RenderTo(text, "notes.png")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Degraded characters:", scribe.FormatWarnings(warnings))
//	}
//
// With options:
//
//	page, warnings, err := scribe.New("my_letters").
//	    InkColor(0, 20, 100).
//	    Seed(42).
//	    Render(text)
//
// Output may also be a Word document; the destination extension decides:
//
//	warnings, err := scribe.New("my_letters").RenderTo(text, "homework.docx")
package scribe

import (
	"github.com/tsawler/scribe/store"
)

// New creates a Renderer reading samples from the given library directory.
// The directory is not touched until a terminal operation runs.
//
// Example:
//
//	warnings, err := scribe.New("my_letters").RenderTo(text, "out.png")
func New(samplesDir string) *Renderer {
	return &Renderer{
		samplesDir: samplesDir,
		options:    defaultOptions(),
	}
}

// FromStore creates a Renderer reading samples from an already-constructed
// store. This is useful for in-memory sample sets and tests.
//
// Example:
//
//	s := store.NewMemStore()
//	s.Add('a', sampleImage)
//	page, warnings, err := scribe.FromStore(s).Render("a")
func FromStore(s store.Store) *Renderer {
	return &Renderer{
		store:   s,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRender is a helper that wraps a call to Render and panics if the
// error is non-nil. It discards warnings and returns just the page.
//
// Example:
//
//	page := scribe.MustRender(scribe.New("my_letters").Render(text))
func MustRender[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
