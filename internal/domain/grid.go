package domain

// Grid is a row-major rectangular board. Grids are value types: every
// transformation returns a fresh grid and never mutates its input.
type Grid [][]Color

// NewGrid returns an all-empty grid of the given dimensions.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Color, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns. Zero-row grids have zero columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Columns returns the transpose: element j of the result is the j-th cell of
// every row, in row order.
func (g Grid) Columns() Grid {
	cols := make(Grid, g.Cols())
	for j := range cols {
		col := make([]Color, len(g))
		for r, row := range g {
			col[r] = row[j]
		}
		cols[j] = col
	}
	return cols
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Color(nil), row...)
	}
	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r, row := range g {
		if len(row) != len(o[r]) {
			return false
		}
		for c, v := range row {
			if v != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Full reports whether no empty cells remain.
func (g Grid) Full() bool {
	for _, row := range g {
		for _, v := range row {
			if v == Empty {
				return false
			}
		}
	}
	return true
}

// Rectangular reports whether every row has the same length.
func (g Grid) Rectangular() bool {
	for _, row := range g {
		if len(row) != g.Cols() {
			return false
		}
	}
	return true
}
