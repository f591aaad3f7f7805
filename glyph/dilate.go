package glyph

import (
	"image"
	"image/color"
)

// dilate thickens the foreground of a grayscale mask using a 2x2 kernel
// whose anchor sits at the bottom-right tap: each pass turns on every pixel
// that has a foreground neighbor among itself, its left, upper, and
// upper-left neighbors, so ink grows one pixel toward +x/+y per iteration.
func dilate(src *image.Gray, iterations int) *image.Gray {
	cur := src
	for i := 0; i < iterations; i++ {
		b := cur.Bounds()
		out := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				v := cur.GrayAt(x, y).Y
				if x > b.Min.X {
					if q := cur.GrayAt(x-1, y).Y; q > v {
						v = q
					}
				}
				if y > b.Min.Y {
					if q := cur.GrayAt(x, y-1).Y; q > v {
						v = q
					}
				}
				if x > b.Min.X && y > b.Min.Y {
					if q := cur.GrayAt(x-1, y-1).Y; q > v {
						v = q
					}
				}
				out.SetGray(x, y, color.Gray{Y: v})
			}
		}
		cur = out
	}
	return cur
}
