package solver

import "svw.info/takuzu/internal/domain"

// CompleteLine fills the empty cells of a line when one color already covers
// at least half of it (2*count >= length): every empty cell becomes the other
// color. Otherwise the line is returned as an unchanged copy.
//
// This is deliberately naive. It looks at one line in isolation and never
// revisits a fill, so it is useless as a solver on its own; it exists as a
// cheap oracle the negation probe uses to surface contradictions.
func CompleteLine(line []domain.Color) []domain.Color {
	out := append([]domain.Color(nil), line...)
	for _, c := range [2]domain.Color{domain.Red, domain.Blue} {
		n := 0
		for _, v := range line {
			if v == c {
				n++
			}
		}
		if 2*n < len(line) {
			continue
		}
		other := c.Other()
		for i, v := range out {
			if v == domain.Empty {
				out[i] = other
			}
		}
		break
	}
	return out
}

// CompleteGrid runs CompleteLine over every row, then over every column of
// the row-completed grid. The two passes never interleave: all rows finish
// before the first column starts.
func CompleteGrid(g domain.Grid) domain.Grid {
	out := make(domain.Grid, len(g))
	for r, row := range g {
		out[r] = CompleteLine(row)
	}
	for j := 0; j < out.Cols(); j++ {
		col := make([]domain.Color, len(out))
		for r := range out {
			col[r] = out[r][j]
		}
		col = CompleteLine(col)
		for r := range out {
			out[r][j] = col[r]
		}
	}
	return out
}
