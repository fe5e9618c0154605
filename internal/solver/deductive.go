package solver

import (
	"context"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/moves"
	"svw.info/takuzu/internal/validator"
)

// DeductiveSolver derives moves by negation: a cell is forced to a color when
// placing the opposite color and naively completing the board provably breaks
// a rule. It never searches, so boards needing deeper reasoning come back
// partially solved.
type DeductiveSolver struct{}

func NewDeductiveSolver() *DeductiveSolver { return &DeductiveSolver{} }

// FindForced scans empty cells in row-major order and probes both candidate
// colors for each, red first. The first cell where one candidate's completion
// fails validation yields the opposite color as a forced move, paired with
// the violation that proves it. probes counts validated completions.
func FindForced(ctx context.Context, g domain.Grid) (fm *domain.ForcedMove, probes int) {
	for r := range g {
		for c := range g[r] {
			if ctx.Err() != nil {
				return nil, probes
			}
			if g[r][c] != domain.Empty {
				continue
			}
			for _, cand := range [2]domain.Color{domain.Red, domain.Blue} {
				// A single assignment into an empty cell cannot clash by
				// itself; the violation that matters is the completed one.
				next, _ := moves.Apply(g, domain.Move{Color: cand, Row: r, Col: c})
				probes++
				if v := validator.Check(CompleteGrid(next)); v != nil {
					return &domain.ForcedMove{
						Move:    domain.Move{Color: cand.Other(), Row: r, Col: c},
						Because: *v,
					}, probes
				}
			}
		}
	}
	return nil, probes
}
