package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/Juyoung35/tents/internal/board"
	"github.com/Juyoung35/tents/internal/grid"
)

const (
	MinSize            = 3
	MaxSize            = 64
	DefaultSize        = 6
	DefaultMaxAttempts = 64
)

var (
	ErrInvalidSize = errors.New("invalid board size")
)

// Generator creates Tents puzzles.
type Generator struct {
	options *Options
	seed    int64
	rng     *rand.Rand
	log     logrus.FieldLogger
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultSize)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var log logrus.FieldLogger = logrus.StandardLogger()
	if options.Logger != nil {
		log = options.Logger
	}

	return &Generator{
		options: options,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		log:     log,
	}
}

// Seed returns the seed actually used by the generator.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate creates a new puzzle.
// Returns the puzzle, whose board holds only trees, and the hidden solution
// the clues were derived from.
func (g *Generator) Generate() (puzzle *board.Puzzle, solution *board.Board, err error) {
	n := g.options.Size
	if n < MinSize || n > MaxSize {
		return nil, nil, fmt.Errorf("%w: size %d must be between %d and %d", ErrInvalidSize, n, MinSize, MaxSize)
	}

	b, err := board.New(n)
	if err != nil {
		return nil, nil, err
	}

	lo, hi := n*n/5, n*n/3
	if hi <= lo {
		return nil, nil, fmt.Errorf("%w: size %d leaves no room for trees", ErrInvalidSize, n)
	}
	treeCount := lo + g.rng.Intn(hi-lo)

	g.placeTrees(b, treeCount)
	repaired := g.repairTrees(b)
	contested := g.placeTents(b)

	rowClues, colClues := board.DeriveClues(b)
	solution = b.Clone()

	// Hide the tents from the player.
	for _, p := range b.Points(board.Tent) {
		if err := b.Set(p.X, p.Y, board.Empty); err != nil {
			return nil, nil, err
		}
	}

	puzzle, err = board.NewPuzzle(b, rowClues, colClues)
	if err != nil {
		return nil, nil, err
	}

	g.log.WithFields(logrus.Fields{
		"size":      n,
		"seed":      g.seed,
		"trees":     b.Count(board.Tree),
		"tents":     solution.Count(board.Tent),
		"repaired":  repaired,
		"contested": contested.Size(),
	}).Debug("generated puzzle")

	return puzzle, solution, nil
}

// placeTrees marks count random empty cells as trees. Each tree gets a
// bounded number of random draws; after that it is placed on a uniformly
// chosen remaining empty cell.
func (g *Generator) placeTrees(b *board.Board, count int) {
	n := b.Size()
	for range count {
		placed := false
		for range g.maxAttempts() {
			x, y := g.rng.Intn(n), g.rng.Intn(n)
			if c, _ := b.Get(x, y); c == board.Empty {
				_ = b.Set(x, y, board.Tree)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		empty := b.Points(board.Empty)
		if len(empty) == 0 {
			return
		}
		p := empty[g.rng.Intn(len(empty))]
		_ = b.Set(p.X, p.Y, board.Tree)
	}
}

// repairTrees makes sure every tree has an empty orthogonal neighbor by
// clearing a random one when it is fully enclosed. The cleared cell may have
// held another tree. Returns the number of repairs.
func (g *Generator) repairTrees(b *board.Board) int {
	n := b.Size()
	repaired := 0
	for y := range n {
		for x := range n {
			if c, _ := b.Get(x, y); c != board.Tree {
				continue
			}
			around := grid.Orthogonal(n, grid.Point{X: x, Y: y})
			if len(around) == 0 || b.Has(around, board.Empty) {
				continue
			}
			p := around[g.rng.Intn(len(around))]
			_ = b.Set(p.X, p.Y, board.Empty)
			repaired++
		}
	}
	return repaired
}

// placeTents gives every tree, in row-major order, one tent on a random
// orthogonal empty cell that does not touch a tent placed earlier. Trees
// whose candidates were all taken get no tent; they are returned.
func (g *Generator) placeTents(b *board.Board) mapset.Set[grid.Point] {
	n := b.Size()
	contested := mapset.New[grid.Point]()
	for y := range n {
		for x := range n {
			if c, _ := b.Get(x, y); c != board.Tree {
				continue
			}
			tree := grid.Point{X: x, Y: y}

			var sites []grid.Point
			for _, p := range b.Filter(grid.Orthogonal(n, tree), board.Empty) {
				if !b.Has(grid.Surrounding(n, p), board.Tent) {
					sites = append(sites, p)
				}
			}
			if len(sites) == 0 {
				contested.Put(tree)
				continue
			}
			p := sites[g.rng.Intn(len(sites))]
			_ = b.Set(p.X, p.Y, board.Tent)
		}
	}

	if contested.Size() > 0 {
		g.log.WithFields(logrus.Fields{"trees": contested.Size()}).Debug("trees left without a tent")
	}
	return contested
}

func (g *Generator) maxAttempts() int {
	if g.options.MaxAttempts > 0 {
		return g.options.MaxAttempts
	}
	return DefaultMaxAttempts
}

// GenerateWithSize is a convenience function to generate a puzzle of the given size.
func GenerateWithSize(size int) (*board.Puzzle, *board.Board, error) {
	gen := New(DefaultOptions(size))
	return gen.Generate()
}
