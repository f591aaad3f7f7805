package store

import (
	"errors"
	"image"
	"testing"
)

func TestFolderNameSpecialCharacters(t *testing.T) {
	tests := []struct {
		char rune
		want string
	}{
		{'.', "dot"},
		{'"', "quote"},
		{':', "colon"},
		{'?', "question"},
		{'*', "asterisk"},
		{'/', "slash"},
		{'\\', "backslash"},
		{'<', "lt"},
		{'>', "gt"},
		{'|', "pipe"},
		{',', "comma"},
		{'\'', "apostrophe"},
	}

	for _, tt := range tests {
		if got := FolderName(tt.char); got != tt.want {
			t.Errorf("FolderName(%q) = %q, want %q", tt.char, got, tt.want)
		}
	}
}

func TestFolderNameLowercasesLetters(t *testing.T) {
	if got := FolderName('A'); got != "a" {
		t.Errorf("FolderName('A') = %q, want %q", got, "a")
	}
	if got := FolderName('z'); got != "z" {
		t.Errorf("FolderName('z') = %q, want %q", got, "z")
	}
	if got := FolderName('É'); got != "é" {
		t.Errorf("FolderName('É') = %q, want %q", got, "é")
	}
}

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()
	one := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	two := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	s.Add('a', one)
	s.Add('a', two)

	ids, err := s.Candidates('a')
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(ids))
	}

	img, err := s.Load(ids[1])
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img != two {
		t.Error("Load returned the wrong sample")
	}
}

func TestMemStoreUppercaseSharesCollection(t *testing.T) {
	s := NewMemStore()
	s.Add('A', image.NewNRGBA(image.Rect(0, 0, 4, 4)))

	ids, err := s.Candidates('a')
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("Expected uppercase sample visible under lowercase, got %d candidates", len(ids))
	}
}

func TestMemStoreMissingCharacter(t *testing.T) {
	s := NewMemStore()

	ids, err := s.Candidates('q')
	if err != nil {
		t.Fatalf("Candidates failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no candidates, got %d", len(ids))
	}
}

func TestMemStoreLoadUnknownID(t *testing.T) {
	s := NewMemStore()

	for _, id := range []string{"a#0", "nonsense", "a#notanumber"} {
		if _, err := s.Load(id); !errors.Is(err, ErrUnknownSample) {
			t.Errorf("Load(%q) error = %v, want ErrUnknownSample", id, err)
		}
	}
}
