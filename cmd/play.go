package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Juyoung35/tents/internal/board"
	"github.com/Juyoung35/tents/internal/generator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	playSize int
	playSeed int64
)

const playHelp = `Commands:
  <x> <y>   toggle a tent at column x, row y (0-based)
  check     list the rules the current tents break
  show      print the board
  reset     remove every tent
  help      show this message
  quit      leave the game`

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a Tents puzzle in the terminal",
		Long: `Generate a puzzle and solve it interactively.

` + playHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generator.DefaultOptions(playSize)
			opts.Seed = playSeed
			gen := generator.New(opts)
			p, _, err := gen.Generate()
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"size": playSize, "seed": gen.Seed()}).Info("starting game")
			fmt.Fprintf(cmd.OutOrStdout(), "Seed %d\n", gen.Seed())
			_, err = play(cmd.InOrStdin(), cmd.OutOrStdout(), p)
			return err
		},
	}

	playCmd.Flags().IntVarP(&playSize, "size", "s", generator.DefaultSize, "Board size")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Seed for a reproducible puzzle (0 = random)")

	rootCmd.AddCommand(playCmd)
}

// play runs the command loop until the puzzle is solved, the player quits or
// the input ends. The board is validated once after every command.
// It reports whether the puzzle was solved.
func play(in io.Reader, out io.Writer, p *board.Puzzle) (bool, error) {
	fmt.Fprintln(out, p.Format())
	fmt.Fprintln(out, playHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return false, scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "q", "exit":
			return false, nil
		case "help", "?":
			fmt.Fprintln(out, playHelp)
			continue
		case "show":
			fmt.Fprintln(out, p.Format())
		case "reset":
			n := p.Reset()
			fmt.Fprintf(out, "Removed %d tent(s).\n", n)
			fmt.Fprintln(out, p.Format())
		case "check":
			violations := p.Violations()
			if len(violations) == 0 {
				fmt.Fprintln(out, "No rule is broken.")
			}
			for _, v := range violations {
				fmt.Fprintln(out, "-", v)
			}
		default:
			x, y, err := parseMove(fields)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if !p.Toggle(x, y) {
				fmt.Fprintf(out, "Cannot toggle (%d,%d).\n", x, y)
				continue
			}
			logrus.WithFields(logrus.Fields{"x": x, "y": y, "cell": p.Cell(x, y)}).Debug("toggled")
			fmt.Fprintln(out, p.Format())
		}

		if p.IsValid() {
			fmt.Fprintln(out, "Solved! The current grid state is valid.")
			return true, nil
		}
		fmt.Fprintln(out, "The current grid state is not valid.")
	}
}

// parseMove reads "x y" from the input fields.
func parseMove(fields []string) (x, y int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unknown command %q (type help)", strings.Join(fields, " "))
	}
	x, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column %q", fields[0])
	}
	y, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q", fields[1])
	}
	return x, y, nil
}
