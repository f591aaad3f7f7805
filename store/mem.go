package store

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// MemStore serves samples from memory. It is useful in tests and for
// embedding a sample set directly in a binary.
type MemStore struct {
	samples map[string][]image.Image
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{samples: make(map[string][]image.Image)}
}

// Add registers one sample image for char.
func (s *MemStore) Add(char rune, img image.Image) {
	key := FolderName(char)
	s.samples[key] = append(s.samples[key], img)
}

// Candidates returns synthetic identifiers of the form "name#index" for
// the samples registered for char.
func (s *MemStore) Candidates(char rune) ([]string, error) {
	key := FolderName(char)
	ids := make([]string, len(s.samples[key]))
	for i := range ids {
		ids[i] = key + "#" + strconv.Itoa(i)
	}
	return ids, nil
}

// Load resolves an identifier previously returned by Candidates.
func (s *MemStore) Load(id string) (image.Image, error) {
	key, idx, ok := splitID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSample, id)
	}
	imgs := s.samples[key]
	if idx < 0 || idx >= len(imgs) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSample, id)
	}
	return imgs[idx], nil
}

func splitID(id string) (key string, idx int, ok bool) {
	pos := strings.LastIndex(id, "#")
	if pos < 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[pos+1:])
	if err != nil {
		return "", 0, false
	}
	return id[:pos], n, true
}
