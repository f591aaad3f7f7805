package store

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DirStore serves samples from a directory tree with one sub-directory per
// character collection:
//
//	my_letters/
//	    a/
//	        sample1.png
//	        sample2.jpg
//	    dot/
//	        period.png
//
// Sample identifiers are file paths, so they can be passed straight to Load.
type DirStore struct {
	base string
}

// NewDirStore creates a DirStore rooted at the given directory. The
// directory is not read until samples are requested.
func NewDirStore(base string) *DirStore {
	return &DirStore{base: base}
}

// Candidates lists the sample image files available for char. A missing
// collection directory yields an empty slice, not an error.
func (s *DirStore) Candidates(char rune) ([]string, error) {
	dir := filepath.Join(s.base, FolderName(char))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing samples for %q: %w", char, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !isSampleFile(e.Name()) {
			continue
		}
		ids = append(ids, filepath.Join(dir, e.Name()))
	}
	return ids, nil
}

// Load decodes the sample at the given path.
func (s *DirStore) Load(id string) (image.Image, error) {
	img, err := imaging.Open(id)
	if err != nil {
		return nil, fmt.Errorf("decoding sample %s: %w", id, err)
	}
	return img, nil
}

// isSampleFile reports whether a file name has a decodable image extension.
func isSampleFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp":
		return true
	default:
		return false
	}
}
