// Package moves applies cell assignments to a board and re-validates the
// result. Out-of-bounds coordinates are a programming error and panic;
// rule violations are ordinary return values.
package moves

import (
	"fmt"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/validator"
)

// Apply sets a single cell on a copy of g and validates the full new board.
// The input grid is never mutated.
func Apply(g domain.Grid, m domain.Move) (domain.Grid, *domain.Violation) {
	if m.Row < 0 || m.Row >= g.Rows() || m.Col < 0 || m.Col >= g.Cols() {
		panic(fmt.Sprintf("moves: %s out of bounds for %dx%d grid", m, g.Rows(), g.Cols()))
	}
	out := g.Clone()
	out[m.Row][m.Col] = m.Color
	return out, validator.Check(out)
}

// ApplyAll applies moves in order and stops at the first one whose board
// fails validation, returning the board as of that move, its position in the
// sequence, and the violation. When every move is clean it returns the final
// board, len(ms), and nil.
func ApplyAll(g domain.Grid, ms []domain.Move) (domain.Grid, int, *domain.Violation) {
	cur := g
	for i, m := range ms {
		next, v := Apply(cur, m)
		if v != nil {
			return next, i, v
		}
		cur = next
	}
	return cur, len(ms), nil
}
