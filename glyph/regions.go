package glyph

import "image"

// region is one 4-connected patch of foreground pixels in a binary mask.
type region struct {
	// area is the number of foreground pixels in the region.
	area int

	// box is the region's bounding box.
	box image.Rectangle
}

// findRegions labels the 4-connected foreground regions of a binary mask.
// A pixel is foreground when its value is above 127. Regions are returned
// in scan order; an empty mask yields an empty slice.
func findRegions(mask *image.Gray) []region {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	visited := make([]bool, w*h)

	at := func(x, y int) bool {
		return mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y > 127
	}

	var regions []region
	var stack []image.Point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || !at(x, y) {
				continue
			}

			// Flood fill one region.
			r := region{box: image.Rect(x, y, x+1, y+1)}
			stack = append(stack[:0], image.Pt(x, y))
			visited[y*w+x] = true

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				r.area++
				r.box = r.box.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))

				for _, q := range [4]image.Point{
					{p.X - 1, p.Y}, {p.X + 1, p.Y},
					{p.X, p.Y - 1}, {p.X, p.Y + 1},
				} {
					if q.X < 0 || q.X >= w || q.Y < 0 || q.Y >= h {
						continue
					}
					if visited[q.Y*w+q.X] || !at(q.X, q.Y) {
						continue
					}
					visited[q.Y*w+q.X] = true
					stack = append(stack, q)
				}
			}

			regions = append(regions, r)
		}
	}

	return regions
}

// inkBounds returns the bounding box (in mask coordinates) of the ink
// regions worth keeping: regions larger than minRegionArea, or all regions
// when the area filter would discard everything. Very thin marks like "."
// or "'" can fall entirely under the noise threshold; dropping them would
// erase the character.
func inkBounds(regions []region) (image.Rectangle, bool) {
	if len(regions) == 0 {
		return image.Rectangle{}, false
	}

	kept := make([]region, 0, len(regions))
	for _, r := range regions {
		if r.area > minRegionArea {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = regions
	}

	box := kept[0].box
	for _, r := range kept[1:] {
		box = box.Union(r.box)
	}
	return box, true
}
