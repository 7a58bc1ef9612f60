package board

import (
	"fmt"
	"strings"

	"github.com/Juyoung35/tents/internal/grid"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Tree
	Tent
)

// String returns the name of the cell kind.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case Tent:
		return "tent"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Rune returns the character used for c in the text form of a board.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return '.'
	case Tree:
		return 'T'
	case Tent:
		return 'A'
	default:
		return '?'
	}
}

// parseCell is the inverse of Rune.
func parseCell(r rune) (Cell, bool) {
	switch r {
	case '.', '0':
		return Empty, true
	case 'T', 't':
		return Tree, true
	case 'A', 'a', '^':
		return Tent, true
	}
	return Empty, false
}

// Board is a square grid of cells stored row-major.
type Board struct {
	size  int
	cells []Cell
}

// New creates an all-empty size×size board.
func New(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// Parse builds a board from one string per row.
// Use '.' for empty cells, 'T' for trees and 'A' for tents.
func Parse(rows ...string) (*Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSize, y, len(runes), b.size)
		}
		for x, r := range runes {
			c, ok := parseCell(r)
			if !ok {
				return nil, fmt.Errorf("%w: '%c' at (%d,%d)", ErrInvalidCell, r, x, y)
			}
			b.cells[y*b.size+x] = c
		}
	}
	return b, nil
}

// Size returns the board dimension n.
func (b *Board) Size() int {
	return b.size
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Get returns the cell at column x, row y.
func (b *Board) Get(x, y int) (Cell, error) {
	if err := b.validatePosition(x, y); err != nil {
		return Empty, err
	}
	return b.at(grid.Point{X: x, Y: y}), nil
}

// Set overwrites the cell at column x, row y.
func (b *Board) Set(x, y int, c Cell) error {
	if err := b.validatePosition(x, y); err != nil {
		return err
	}
	if err := validateCell(c); err != nil {
		return err
	}
	b.put(grid.Point{X: x, Y: y}, c)
	return nil
}

// at and put skip bounds checks; callers pass on-board points only.
func (b *Board) at(p grid.Point) Cell {
	return b.cells[p.Y*b.size+p.X]
}

func (b *Board) put(p grid.Point, c Cell) {
	b.cells[p.Y*b.size+p.X] = c
}

// Count returns how many cells hold c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// RowCount returns how many cells of row y hold c.
func (b *Board) RowCount(y int, c Cell) int {
	if y < 0 || y >= b.size {
		return 0
	}
	n := 0
	for _, v := range b.cells[y*b.size : (y+1)*b.size] {
		if v == c {
			n++
		}
	}
	return n
}

// ColCount returns how many cells of column x hold c.
func (b *Board) ColCount(x int, c Cell) int {
	if x < 0 || x >= b.size {
		return 0
	}
	n := 0
	for y := range b.size {
		if b.cells[y*b.size+x] == c {
			n++
		}
	}
	return n
}

// Points returns the positions holding c in row-major order.
func (b *Board) Points(c Cell) []grid.Point {
	var out []grid.Point
	for i, v := range b.cells {
		if v == c {
			out = append(out, grid.Point{X: i % b.size, Y: i / b.size})
		}
	}
	return out
}

// Has reports whether any of the given points holds c.
// Off-board points are ignored.
func (b *Board) Has(points []grid.Point, c Cell) bool {
	for _, p := range points {
		if grid.InBounds(b.size, p) && b.at(p) == c {
			return true
		}
	}
	return false
}

// Filter returns the points that hold c, preserving order.
func (b *Board) Filter(points []grid.Point, c Cell) []grid.Point {
	var out []grid.Point
	for _, p := range points {
		if grid.InBounds(b.size, p) && b.at(p) == c {
			out = append(out, p)
		}
	}
	return out
}

// String returns the rows of the board separated by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size + 1))
	for y := range b.size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.size {
			sb.WriteRune(b.at(grid.Point{X: x, Y: y}).Rune())
		}
	}
	return sb.String()
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
