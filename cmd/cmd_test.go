package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juyoung35/tents/internal/board"
)

func cornerPuzzle(t *testing.T) *board.Puzzle {
	t.Helper()
	b, err := board.Parse(
		"T...",
		"....",
		"....",
		"...T",
	)
	require.NoError(t, err)
	p, err := board.NewPuzzle(b, []int{1, 0, 0, 1}, []int{0, 1, 1, 0})
	require.NoError(t, err)
	return p
}

func TestParseSizeRange(t *testing.T) {
	cases := []struct {
		in       string
		min, max int
		wantErr  bool
	}{
		{"8", 8, 8, false},
		{" 6 : 9 ", 6, 9, false},
		{"9:6", 0, 0, true},
		{"x", 0, 0, true},
		{"1:2:3", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			min, max, err := parseSizeRange(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.min, min)
			assert.Equal(t, tc.max, max)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	_, err := parseLogLevel("debug")
	assert.NoError(t, err)
	_, err = parseLogLevel("loud")
	assert.Error(t, err)
}

func TestPlay_SolvesPuzzle(t *testing.T) {
	p := cornerPuzzle(t)
	in := strings.NewReader("1 0\n9 9\n0 0\nfoo\n2 3\n")
	var out bytes.Buffer

	solved, err := play(in, &out, p)
	require.NoError(t, err)
	assert.True(t, solved)

	text := out.String()
	assert.Contains(t, text, "Cannot toggle (9,9).")
	assert.Contains(t, text, "Cannot toggle (0,0).")
	assert.Contains(t, text, `unknown command "foo"`)
	assert.Contains(t, text, "Solved!")
}

func TestPlay_CheckAndQuit(t *testing.T) {
	p := cornerPuzzle(t)
	in := strings.NewReader("2 2\ncheck\nreset\nquit\n")
	var out bytes.Buffer

	solved, err := play(in, &out, p)
	require.NoError(t, err)
	assert.False(t, solved)

	text := out.String()
	assert.Contains(t, text, "- tent at (2,2) has no adjacent tree")
	assert.Contains(t, text, "Removed 1 tent(s).")
	assert.Empty(t, p.Tents())
}

func TestPlay_EndOfInput(t *testing.T) {
	solved, err := play(strings.NewReader(""), io.Discard, cornerPuzzle(t))
	require.NoError(t, err)
	assert.False(t, solved)
}

func TestGeneratePuzzles_Reproducible(t *testing.T) {
	a, err := generatePuzzles(3, 5, 7, 11)
	require.NoError(t, err)
	b, err := generatePuzzles(3, 5, 7, 11)
	require.NoError(t, err)
	require.Len(t, a, 3)

	for i := range a {
		assert.Equal(t, int64(11+i), a[i].seed)
		assert.Equal(t, a[i].puzzle.Format(), b[i].puzzle.Format())
		assert.GreaterOrEqual(t, a[i].puzzle.Size(), 5)
		assert.LessOrEqual(t, a[i].puzzle.Size(), 7)
	}
}

func TestWriteHTML(t *testing.T) {
	puzzles, err := generatePuzzles(2, 5, 5, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeHTML(&buf, puzzles))
	html := buf.String()
	assert.Contains(t, html, "Tents Puzzle #1")
	assert.Contains(t, html, "Tents Puzzle #2")
	assert.Equal(t, 2, strings.Count(html, `<div class="page">`))
	assert.True(t, strings.HasSuffix(html, "</html>\n"))
}

func TestGenCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"gen", "--size", "5", "--seed", "3", "--solution"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		showSolution = false
	})

	require.NoError(t, rootCmd.Execute())
	text := out.String()
	assert.Contains(t, text, "Puzzle #1 (Size: 5, Seed: 3):")
	assert.Contains(t, text, "Solution:")
	assert.Contains(t, text, "A")
}
