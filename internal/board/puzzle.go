package board

import (
	"fmt"
	"strings"

	"github.com/Juyoung35/tents/internal/grid"
)

// Puzzle is a playable session: a board of trees and player tents plus the
// fixed tent count for every row and column.
//
// Trees never change once the puzzle is built. The only mutation is Toggle,
// which flips a non-tree cell between Empty and Tent.
type Puzzle struct {
	board    *Board
	rowClues []int
	colClues []int
}

// NewPuzzle assembles a puzzle from a board and its clues.
// The puzzle takes ownership of b; the clue slices are copied.
func NewPuzzle(b *Board, rowClues, colClues []int) (*Puzzle, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidSize)
	}
	if err := validateClues("row", rowClues, b.size); err != nil {
		return nil, err
	}
	if err := validateClues("column", colClues, b.size); err != nil {
		return nil, err
	}
	return &Puzzle{
		board:    b,
		rowClues: append([]int(nil), rowClues...),
		colClues: append([]int(nil), colClues...),
	}, nil
}

// DeriveClues counts the tents in every row and column of b.
func DeriveClues(b *Board) (rowClues, colClues []int) {
	rowClues = make([]int, b.size)
	colClues = make([]int, b.size)
	for i, c := range b.cells {
		if c == Tent {
			rowClues[i/b.size]++
			colClues[i%b.size]++
		}
	}
	return rowClues, colClues
}

// Size returns the board dimension n.
func (p *Puzzle) Size() int {
	return p.board.size
}

// Cell returns the cell at column x, row y, or Empty when off the board.
func (p *Puzzle) Cell(x, y int) Cell {
	c, err := p.board.Get(x, y)
	if err != nil {
		return Empty
	}
	return c
}

// RowClues returns a copy of the row clues.
func (p *Puzzle) RowClues() []int {
	return append([]int(nil), p.rowClues...)
}

// ColClues returns a copy of the column clues.
func (p *Puzzle) ColClues() []int {
	return append([]int(nil), p.colClues...)
}

// Trees returns the tree positions in row-major order.
func (p *Puzzle) Trees() []grid.Point {
	return p.board.Points(Tree)
}

// Tents returns the tent positions in row-major order.
func (p *Puzzle) Tents() []grid.Point {
	return p.board.Points(Tent)
}

// Snapshot returns a copy of the current board for read-only consumers.
func (p *Puzzle) Snapshot() *Board {
	return p.board.Clone()
}

// Toggle flips the cell at column x, row y between Empty and Tent.
// Trees and off-board coordinates are left alone.
// It reports whether the board changed.
func (p *Puzzle) Toggle(x, y int) bool {
	c, err := p.board.Get(x, y)
	if err != nil {
		return false
	}
	pt := grid.Point{X: x, Y: y}
	switch c {
	case Empty:
		p.board.put(pt, Tent)
	case Tent:
		p.board.put(pt, Empty)
	case Tree:
		return false
	default:
		return false
	}
	return true
}

// Reset removes every tent and returns how many were removed.
func (p *Puzzle) Reset() int {
	n := 0
	for _, t := range p.Tents() {
		if p.Toggle(t.X, t.Y) {
			n++
		}
	}
	return n
}

// Format renders the board with column clues above it and row clues on the
// right.
func (p *Puzzle) Format() string {
	n := p.board.size
	width := len(fmt.Sprint(n))
	cell := func(s string) string { return fmt.Sprintf("%*s ", width, s) }

	var sb strings.Builder
	for _, v := range p.colClues {
		sb.WriteString(cell(fmt.Sprint(v)))
	}
	sb.WriteByte('\n')
	for y := range n {
		for x := range n {
			sb.WriteString(cell(string(p.board.at(grid.Point{X: x, Y: y}).Rune())))
		}
		sb.WriteString("| ")
		sb.WriteString(fmt.Sprint(p.rowClues[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
