package board

import (
	"fmt"

	"github.com/Juyoung35/tents/internal/grid"
)

// Rule identifies one of the puzzle constraints.
type Rule int

const (
	// RuleRowCount: a row holds a different number of tents than its clue.
	RuleRowCount Rule = iota
	// RuleColCount: a column holds a different number of tents than its clue.
	RuleColCount
	// RuleNoTree: a tent has no orthogonally adjacent tree.
	RuleNoTree
	// RuleTouching: a tent touches another tent, diagonals included.
	RuleTouching
)

func (r Rule) String() string {
	switch r {
	case RuleRowCount:
		return "row count"
	case RuleColCount:
		return "column count"
	case RuleNoTree:
		return "no adjacent tree"
	case RuleTouching:
		return "touching tents"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// Violation describes a single broken rule. Line is set for the count rules,
// At for the per-tent rules.
type Violation struct {
	Rule Rule
	Line int
	At   grid.Point
	Want int
	Got  int
}

func (v Violation) String() string {
	switch v.Rule {
	case RuleRowCount:
		return fmt.Sprintf("row %d has %d tents, want %d", v.Line, v.Got, v.Want)
	case RuleColCount:
		return fmt.Sprintf("column %d has %d tents, want %d", v.Line, v.Got, v.Want)
	case RuleNoTree:
		return fmt.Sprintf("tent at %v has no adjacent tree", v.At)
	case RuleTouching:
		return fmt.Sprintf("tent at %v touches another tent", v.At)
	default:
		return v.Rule.String()
	}
}

// Validate reports whether p satisfies every rule.
func Validate(p *Puzzle) bool {
	return p.IsValid()
}

// IsValid reports whether the current tents satisfy every rule:
// the line counts match the clues, every tent sits orthogonally next to a
// tree, and no two tents touch. It stops at the first failure.
func (p *Puzzle) IsValid() bool {
	b := p.board
	for i := range b.size {
		if b.RowCount(i, Tent) != p.rowClues[i] || b.ColCount(i, Tent) != p.colClues[i] {
			return false
		}
	}
	for _, t := range b.Points(Tent) {
		if !b.hasAdjacentTree(t) || b.hasTouchingTent(t) {
			return false
		}
	}
	return true
}

// Solved is IsValid under the name used by front ends.
func (p *Puzzle) Solved() bool {
	return p.IsValid()
}

// Violations lists every broken rule: rows first, then columns, then tents
// in row-major order.
func (p *Puzzle) Violations() []Violation {
	b := p.board
	var out []Violation
	for y := range b.size {
		if got := b.RowCount(y, Tent); got != p.rowClues[y] {
			out = append(out, Violation{Rule: RuleRowCount, Line: y, Want: p.rowClues[y], Got: got})
		}
	}
	for x := range b.size {
		if got := b.ColCount(x, Tent); got != p.colClues[x] {
			out = append(out, Violation{Rule: RuleColCount, Line: x, Want: p.colClues[x], Got: got})
		}
	}
	for _, t := range b.Points(Tent) {
		if !b.hasAdjacentTree(t) {
			out = append(out, Violation{Rule: RuleNoTree, At: t})
		}
		if b.hasTouchingTent(t) {
			out = append(out, Violation{Rule: RuleTouching, At: t})
		}
	}
	return out
}

func (b *Board) hasAdjacentTree(p grid.Point) bool {
	return b.Has(grid.Orthogonal(b.size, p), Tree)
}

func (b *Board) hasTouchingTent(p grid.Point) bool {
	return b.Has(grid.Surrounding(b.size, p), Tent)
}
