package generator

import "svw.info/takuzu/internal/ports"

// CarveGenerator creates puzzles that the provided deduction-only Solver can
// finish: it fills a complete valid board, then removes cells for as long as
// the solver still recovers the full board.
type CarveGenerator struct {
	Solver ports.Solver
}

// NewCarveGenerator wires a generator that uses the given solver to keep
// carved puzzles solvable.
func NewCarveGenerator(s ports.Solver) *CarveGenerator {
	return &CarveGenerator{Solver: s}
}
