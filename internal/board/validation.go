package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("board size must be positive and square")
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidCell     = errors.New("cell must be empty, tree or tent")
	ErrClueCount       = errors.New("clue count must match board size")
	ErrClueRange       = errors.New("clue out of range")
)

// validatePosition checks that (x, y) lies on the board.
func (b *Board) validatePosition(x, y int) error {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return fmt.Errorf("%w: (%d,%d) must be in range [0, %d)", ErrInvalidPosition, x, y, b.size)
	}
	return nil
}

// validateCell rejects values outside the three cell kinds.
func validateCell(c Cell) error {
	switch c {
	case Empty, Tree, Tent:
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidCell, uint8(c))
	}
}

// validateClues checks one clue vector against the board size.
func validateClues(kind string, clues []int, size int) error {
	if len(clues) != size {
		return fmt.Errorf("%w: %d %s clues for size %d", ErrClueCount, len(clues), kind, size)
	}
	for i, v := range clues {
		if v < 0 || v > size {
			return fmt.Errorf("%w: %s clue %d is %d, must be in [0, %d]", ErrClueRange, kind, i, v, size)
		}
	}
	return nil
}
