package validator

import (
	"context"

	"svw.info/takuzu/internal/domain"
)

// Check inspects the whole board and returns the first violation found, or
// nil. Detector precedence is fixed: triples, then saturation, then duplicate
// lines. Within each detector all rows are scanned before any column, and a
// column hit reports positions as row indices.
//
// Malformed grids are a caller bug, not a puzzle state, and fail fast.
func Check(g domain.Grid) *domain.Violation {
	if len(g) == 0 || !g.Rectangular() {
		panic("validator: grid must be rectangular and non-empty")
	}
	if v := checkTriples(g); v != nil {
		return v
	}
	if v := checkSaturation(g); v != nil {
		return v
	}
	return checkDuplicates(g)
}

// activeColors fixes the tie-break priority between the two colors wherever a
// rule inspects them in turn.
var activeColors = [2]domain.Color{domain.Red, domain.Blue}

func positionsOf(line []domain.Color, c domain.Color) []int {
	var pos []int
	for i, v := range line {
		if v == c {
			pos = append(pos, i)
		}
	}
	return pos
}

// FastValidator adapts Check to the ports.Validator interface.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (*domain.Violation, error) {
	return Check(g), nil
}
