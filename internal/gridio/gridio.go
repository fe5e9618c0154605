// Package gridio converts boards to and from their textual form: one row per
// line, cells written as r, b, or . for empty. It is the construction surface
// for drivers; the core only ever sees well-formed rectangular grids.
package gridio

import (
	"fmt"
	"strings"

	"svw.info/takuzu/internal/domain"
)

// Parse reads a board. Blank lines and leading/trailing whitespace are
// ignored; every remaining line must have the same length.
func Parse(text string) (domain.Grid, error) {
	var g domain.Grid
	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		row := make([]domain.Color, 0, len(line))
		for _, ch := range line {
			switch ch {
			case 'r', 'R':
				row = append(row, domain.Red)
			case 'b', 'B':
				row = append(row, domain.Blue)
			case '.', '_':
				row = append(row, domain.Empty)
			case ' ', '\t':
				// cell separators are allowed
			default:
				return nil, fmt.Errorf("gridio: bad cell %q on line %d", ch, n+1)
			}
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("gridio: line %d has %d cells, want %d", n+1, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("gridio: empty board")
	}
	return g, nil
}

// MustParse is Parse for fixed test and example boards.
func MustParse(text string) domain.Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// Render writes the board back in the form Parse reads.
func Render(g domain.Grid) string {
	var b strings.Builder
	for _, row := range g {
		for _, v := range row {
			b.WriteString(v.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
