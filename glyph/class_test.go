package glyph

import "testing"

func TestClassifyMembership(t *testing.T) {
	tests := []struct {
		name  string
		chars string
		want  Class
	}{
		{"small punctuation", ".,'\"`-", SmallPunctuation},
		{"tall ascenders", "ftbdhkl", TallAscender},
		{"descenders", "gjpqy", Descender},
		{"short letters", "aceimnorsuvwxz", Short},
		{"digits", "0123456789", Default},
		{"symbols", "@#$%&", Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.chars {
				if got := Classify(r); got != tt.want {
					t.Errorf("Classify(%q) = %v, want %v", r, got, tt.want)
				}
			}
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := Classify('F'); got != TallAscender {
		t.Errorf("Classify('F') = %v, want %v", got, TallAscender)
	}
	if got := Classify('Y'); got != Descender {
		t.Errorf("Classify('Y') = %v, want %v", got, Descender)
	}
	if got := Classify('A'); got != Short {
		t.Errorf("Classify('A') = %v, want %v", got, Short)
	}
}

func TestHeightRatios(t *testing.T) {
	tests := []struct {
		class Class
		want  float64
	}{
		{SmallPunctuation, 0.20},
		{TallAscender, 0.65},
		{Descender, 0.65},
		{Short, 0.35},
		{Default, 0.60},
	}

	for _, tt := range tests {
		if got := tt.class.heightRatio(); got != tt.want {
			t.Errorf("%v.heightRatio() = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{SmallPunctuation, "small-punctuation"},
		{TallAscender, "tall-ascender"},
		{Descender, "descender"},
		{Short, "short"},
		{Default, "default"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}
