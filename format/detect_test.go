package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"page.png", PNG},
		{"page.PNG", PNG},
		{"page.jpg", JPEG},
		{"page.jpeg", JPEG},
		{"page.JPEG", JPEG},
		{"homework.docx", DOCX},
		{"homework.DOCX", DOCX},
		{"dir/with.dots/page.png", PNG},
		{"page.pdf", Unknown},
		{"page", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.path); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{DOCX, "DOCX"},
		{Unknown, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{DOCX, ".docx"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Extension() = %q, want %q", got, tt.want)
		}
	}
}
