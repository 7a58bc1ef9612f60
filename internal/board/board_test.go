package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juyoung35/tents/internal/grid"
)

func TestNew(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, 16, b.Count(Empty))

	for _, size := range []int{0, -3} {
		_, err := New(size)
		assert.True(t, errors.Is(err, ErrInvalidSize), "New(%d) error = %v", size, err)
	}
}

func TestParse(t *testing.T) {
	b, err := Parse(
		"T...",
		"A...",
		"..A.",
		"...T",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Count(Tree))
	assert.Equal(t, 2, b.Count(Tent))

	c, err := b.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, Tent, c)

	assert.Equal(t, "T...\nA...\n..A.\n...T", b.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, ErrInvalidSize},
		{"Ragged", []string{"..", "."}, ErrInvalidSize},
		{"NotSquare", []string{"...", "..."}, ErrInvalidSize},
		{"BadChar", []string{".x", ".."}, ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.rows...)
			assert.True(t, errors.Is(err, tc.err), "Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
		})
	}
}

func TestGetSet_OutOfRange(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	_, err = b.Get(3, 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = b.Get(0, -1)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	assert.ErrorIs(t, b.Set(-1, 0, Tree), ErrInvalidPosition)
	assert.ErrorIs(t, b.Set(0, 0, Cell(9)), ErrInvalidCell)
	assert.Equal(t, 9, b.Count(Empty))

	require.NoError(t, b.Set(2, 1, Tree))
	c, err := b.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Tree, c)
}

func TestClone_IsIndependent(t *testing.T) {
	b, err := Parse("T.", "..")
	require.NoError(t, err)
	c := b.Clone()
	require.True(t, b.Equal(c))

	require.NoError(t, c.Set(1, 1, Tent))
	assert.False(t, b.Equal(c))
	assert.Equal(t, 0, b.Count(Tent))
}

func TestLineCounts(t *testing.T) {
	b, err := Parse(
		"A.A",
		"TTA",
		"...",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, b.RowCount(0, Tent))
	assert.Equal(t, 1, b.RowCount(1, Tent))
	assert.Equal(t, 0, b.RowCount(2, Tent))
	assert.Equal(t, 2, b.ColCount(2, Tent))
	assert.Equal(t, 1, b.ColCount(0, Tree))
	assert.Equal(t, 0, b.RowCount(5, Tent))
	assert.Equal(t, 0, b.ColCount(-1, Tent))
}

func TestPointsAndFilter(t *testing.T) {
	b, err := Parse(
		".T.",
		"T..",
		"..T",
	)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}}, b.Points(Tree))

	around := grid.Orthogonal(3, grid.Point{X: 1, Y: 1})
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, b.Filter(around, Tree))
	assert.True(t, b.Has(around, Empty))
	assert.False(t, b.Has([]grid.Point{{X: 9, Y: 9}}, Empty))
}

func TestCellText(t *testing.T) {
	for _, c := range []Cell{Empty, Tree, Tent} {
		got, ok := parseCell(c.Rune())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "tree", Tree.String())
	assert.Equal(t, "cell(7)", Cell(7).String())
}
