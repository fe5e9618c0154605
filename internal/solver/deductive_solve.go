package solver

import (
	"context"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/moves"
	"svw.info/takuzu/internal/ports"
)

// Solve repeatedly finds and applies forced moves until none remain. The loop
// is capped at rows*cols iterations, the most single-cell moves any board can
// take, so it terminates no matter what the probe returns. If applying a
// forced move itself fails validation the solve stops there and the violation
// is surfaced in the Solution.
func (s *DeductiveSolver) Solve(ctx context.Context, g domain.Grid) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}
	cur := g.Clone()
	sol := &domain.Solution{}

	limit := g.Rows() * g.Cols()
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			sol.Grid = cur
			st.Duration = time.Since(start)
			return sol, st, err
		}
		fm, probes := FindForced(ctx, cur)
		st.Probes += probes
		if fm == nil {
			break
		}
		sol.Moves = append(sol.Moves, *fm)
		next, v := moves.Apply(cur, fm.Move)
		cur = next
		if v != nil {
			// The finder and the real board disagree; stop and report.
			sol.Violation = v
			break
		}
	}
	sol.Grid = cur
	st.Duration = time.Since(start)
	return sol, st, nil
}
