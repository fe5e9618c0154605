package hint

import (
	"context"
	"fmt"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/solver"
)

// Forced implements a Hinter that suggests the next provably forced move.
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint returns the first forced move found, with the contradiction that
// justifies it phrased for the UI.
func (h *Forced) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	fm, _ := solver.FindForced(ctx, g)
	if fm == nil {
		return domain.Hint{}, false, ctx.Err()
	}
	opp := fm.Move.Color.Other()
	msg := fmt.Sprintf("Play %s at row %d col %d: %s there leads to %s",
		fm.Move.Color, fm.Move.Row, fm.Move.Col, opp, &fm.Because)
	return domain.Hint{
		Message: msg,
		Move:    fm.Move,
		Because: fm.Because.String(),
	}, true, nil
}
