// Package grid holds the coordinate primitives shared by the board, the
// generator and the validator: points, bounds checks and neighbourhood
// queries over a square grid.
package grid

import "fmt"

// Point addresses a cell on a square grid. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies on a size×size grid.
func InBounds(size int, p Point) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Connectivity selects the neighbourhood used by Neighbors.
type Connectivity int

const (
	// Conn4 uses the orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses the full ring around a cell, diagonals included.
	Conn8
)

// orthogonalOffsets lists N, E, S, W.
var orthogonalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Orthogonal returns the on-board N, E, S, W neighbours of p.
// It is the axis-aligned subset of Ring(size, p, 1, false).
func Orthogonal(size int, p Point) []Point {
	if size < 1 || !InBounds(size, p) {
		return nil
	}
	out := make([]Point, 0, 4)
	for _, d := range orthogonalOffsets {
		q := p.Add(d[0], d[1])
		if InBounds(size, q) {
			out = append(out, q)
		}
	}
	return out
}

// Surrounding returns the on-board cells touching p, diagonals included.
func Surrounding(size int, p Point) []Point {
	return Ring(size, p, 1, false)
}

// Neighbors dispatches to Orthogonal or Surrounding.
func Neighbors(size int, p Point, conn Connectivity) []Point {
	if conn == Conn8 {
		return Surrounding(size, p)
	}
	return Orthogonal(size, p)
}
