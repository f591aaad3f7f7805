package glyph

import (
	"image"
	"testing"
)

func TestDilateGrowsTowardBottomRight(t *testing.T) {
	mask := makeMask(8, 8, image.Pt(2, 2))

	out := dilate(mask, 1)

	on := map[image.Point]bool{
		{2, 2}: true, {3, 2}: true,
		{2, 3}: true, {3, 3}: true,
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if on[image.Pt(x, y)] {
				want = 255
			}
			if got := out.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDilateTwoIterations(t *testing.T) {
	mask := makeMask(8, 8, image.Pt(2, 2))

	out := dilate(mask, 2)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inBlock := x >= 2 && x <= 4 && y >= 2 && y <= 4
			want := uint8(0)
			if inBlock {
				want = 255
			}
			if got := out.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDilateNeverGrowsUpOrLeft(t *testing.T) {
	mask := makeMask(10, 10, image.Pt(5, 5))

	out := dilate(mask, 2)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 || y < 5 {
				if out.GrayAt(x, y).Y != 0 {
					t.Errorf("pixel (%d,%d) should stay background", x, y)
				}
			}
		}
	}
}
