package grid

import "github.com/zyedidia/generic/mapset"

// Ring returns the points at Chebyshev distance radius from center, that is
// every point with max(|dx|, |dy|) == radius. It is the boundary of the
// square, not the filled square.
//
// Without wrapping the ring bounds are saturated to the grid edges, so a
// centre near a border yields only the on-board part of the ring. With
// wrapping coordinates are taken modulo size and the ring always has 8*radius
// points as long as size > 2*radius; on smaller grids the wrapped ring folds
// onto itself and repeated points are dropped.
//
// The order is stable: the top band left to right, then the left and right
// sides row by row, then the bottom band left to right.
//
// A negative radius, an empty grid or an off-grid centre yields nil.
func Ring(size int, center Point, radius int, wrap bool) []Point {
	if size < 1 || radius < 0 || !InBounds(size, center) {
		return nil
	}
	if radius == 0 {
		return []Point{center}
	}
	if wrap {
		return wrappedRing(size, center, radius)
	}
	return clampedRing(size, center, radius)
}

func clampedRing(size int, c Point, r int) []Point {
	top, bottom := c.Y-r, c.Y+r
	left, right := c.X-r, c.X+r

	x0, x1 := max(left, 0), min(right, size-1)
	y0, y1 := max(top+1, 0), min(bottom-1, size-1)

	out := make([]Point, 0, 8*r)
	if top >= 0 {
		for x := x0; x <= x1; x++ {
			out = append(out, Point{X: x, Y: top})
		}
	}
	for y := y0; y <= y1; y++ {
		if left >= 0 {
			out = append(out, Point{X: left, Y: y})
		}
		if right < size {
			out = append(out, Point{X: right, Y: y})
		}
	}
	if bottom < size {
		for x := x0; x <= x1; x++ {
			out = append(out, Point{X: x, Y: bottom})
		}
	}
	return out
}

func wrappedRing(size int, c Point, r int) []Point {
	raw := make([]Point, 0, 8*r)
	for dx := -r; dx <= r; dx++ {
		raw = append(raw, wrapPoint(size, c.X+dx, c.Y-r))
	}
	for dy := -r + 1; dy <= r-1; dy++ {
		raw = append(raw, wrapPoint(size, c.X-r, c.Y+dy))
		raw = append(raw, wrapPoint(size, c.X+r, c.Y+dy))
	}
	for dx := -r; dx <= r; dx++ {
		raw = append(raw, wrapPoint(size, c.X+dx, c.Y+r))
	}
	if size > 2*r {
		return raw
	}

	// The ring overlaps itself; keep the first occurrence of each point.
	seen := mapset.New[Point]()
	out := raw[:0]
	for _, p := range raw {
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		out = append(out, p)
	}
	return out
}

// wrapPoint maps (x, y) onto the torus of the given size.
func wrapPoint(size, x, y int) Point {
	return Point{X: mod(x, size), Y: mod(y, size)}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
