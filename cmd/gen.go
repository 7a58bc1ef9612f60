package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Juyoung35/tents/internal/board"
	"github.com/Juyoung35/tents/internal/generator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	numPuzzles   int
	sizeSpec     string
	genSeed      int64
	showSolution bool
	outputFile   string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Tents puzzles",
		Long: `Generate one or more Tents puzzles of a given board size.

Examples:
  tents gen --size 8
  tents gen -n 5 --size 6:10 --solution
  tents gen --size 7 --seed 42 -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&sizeSpec, "size", "s", strconv.Itoa(generator.DefaultSize),
		fmt.Sprintf("Board size %d-%d or range like 6:9", generator.MinSize, generator.MaxSize))
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random); puzzle i uses seed+i")
	genCmd.Flags().BoolVar(&showSolution, "solution", false, "Print the hidden solution below each puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

// parseSizeRange parses a size string which can be:
// - A single number: "8"
// - A range: "6:9"
// Returns min, max, and an error
func parseSizeRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size: %w", err)
		}
		return val, val, nil
	case 2:
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("size min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid size format: %s (use format like '8' or '6:9')", s)
}

// generated pairs a puzzle with the seed and solution it came from.
type generated struct {
	seed     int64
	puzzle   *board.Puzzle
	solution *board.Board
}

// generateHTML creates an HTML file with puzzles, one per page
func generateHTML(filename string, puzzles []generated) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	return writeHTML(file, puzzles)
}

func writeHTML(w io.Writer, puzzles []generated) error {
	_, err := fmt.Fprint(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Tents Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .tents-grid table {
            border-collapse: collapse;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 22px;
        }
        .tents-grid td {
            width: 36px;
            height: 36px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .tents-grid td.clue {
            border: none;
            font-weight: bold;
        }
        .tents-grid td.tree {
            background-color: #c8e6c9;
        }
        .tents-grid td.tent {
            background-color: #ffcdd2;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i, g := range puzzles {
		solution := ""
		if showSolution {
			solution = "<h2>Solution</h2>\n        " + boardToHTML(g.puzzle, g.solution)
		}
		_, err = fmt.Fprintf(w, `    <div class="page">
        <h1>Tents Puzzle #%d</h1>
        <h2>Size %d, seed %d</h2>
        %s
        %s
    </div>
`, i+1, g.puzzle.Size(), g.seed, boardToHTML(g.puzzle, g.puzzle.Snapshot()), solution)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(w, `</body>
</html>
`)
	return err
}

// boardToHTML converts a board to an HTML table, with the puzzle's column
// clues on top and row clues on the right.
func boardToHTML(p *board.Puzzle, b *board.Board) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"tents-grid\"><table><tr>")
	for _, v := range p.ColClues() {
		sb.WriteString(fmt.Sprintf("<td class=\"clue\">%d</td>", v))
	}
	sb.WriteString("<td class=\"clue\"></td></tr>")

	rowClues := p.RowClues()
	for y := range b.Size() {
		sb.WriteString("<tr>")
		for x := range b.Size() {
			c, _ := b.Get(x, y)
			switch c {
			case board.Tree:
				sb.WriteString("<td class=\"tree\">&#x1F333;</td>")
			case board.Tent:
				sb.WriteString("<td class=\"tent\">&#x26FA;</td>")
			case board.Empty:
				sb.WriteString("<td></td>")
			}
		}
		sb.WriteString(fmt.Sprintf("<td class=\"clue\">%d</td></tr>", rowClues[y]))
	}

	sb.WriteString("</table></div>")
	return sb.String()
}

// generatePuzzles builds count puzzles with sizes drawn from [minSize, maxSize].
func generatePuzzles(count, minSize, maxSize int, seed int64) ([]generated, error) {
	pickSeed := seed
	if pickSeed == 0 {
		pickSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(pickSeed))

	out := make([]generated, 0, count)
	for i := 0; i < count; i++ {
		// Randomly select a size from range if it's a range
		size := minSize
		if maxSize > minSize {
			size = minSize + rng.Intn(maxSize-minSize+1)
		}

		opts := generator.DefaultOptions(size)
		if seed != 0 {
			opts.Seed = seed + int64(i)
		}
		gen := generator.New(opts)

		puzzle, solution, err := gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("generation failed: %w", err)
		}
		logrus.WithFields(logrus.Fields{"puzzle": i + 1, "size": size, "seed": gen.Seed()}).Info("generated")
		out = append(out, generated{seed: gen.Seed(), puzzle: puzzle, solution: solution})
	}
	return out, nil
}

func runGen(cmd *cobra.Command, args []string) error {
	minSize, maxSize, err := parseSizeRange(sizeSpec)
	if err != nil {
		return err
	}

	if minSize < generator.MinSize || maxSize > generator.MaxSize {
		return fmt.Errorf("size must be between %d and %d, got %s", generator.MinSize, generator.MaxSize, sizeSpec)
	}
	if numPuzzles < 1 {
		return fmt.Errorf("number of puzzles must be positive, got %d", numPuzzles)
	}

	puzzles, err := generatePuzzles(numPuzzles, minSize, maxSize, genSeed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputFile == "" {
		for i, g := range puzzles {
			fmt.Fprintf(out, "Puzzle #%d (Size: %d, Seed: %d):\n", i+1, g.puzzle.Size(), g.seed)
			fmt.Fprintln(out, g.puzzle.Format())
			if showSolution {
				sp, err := board.NewPuzzle(g.solution.Clone(), g.puzzle.RowClues(), g.puzzle.ColClues())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Solution:")
				fmt.Fprintln(out, sp.Format())
			}
		}
		return nil
	}

	filename := outputFile
	if strings.Contains(filename, "*") {
		filename = strings.ReplaceAll(filename, "*", "puzzles")
	}

	// Ensure .html extension
	if filepath.Ext(filename) != ".html" {
		filename = filename + ".html"
	}

	if err := generateHTML(filename, puzzles); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	fmt.Fprintf(out, "Generated %d puzzle(s) in %s\n", len(puzzles), filename)
	return nil
}
