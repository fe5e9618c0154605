package validator

import "svw.info/takuzu/internal/domain"

// checkTriples finds the first run of three equal active cells: rows in index
// order, then columns. Empty cells never take part in a run.
func checkTriples(g domain.Grid) *domain.Violation {
	if v := triplesInLines(g, domain.LineRow); v != nil {
		return v
	}
	return triplesInLines(g.Columns(), domain.LineColumn)
}

func triplesInLines(lines domain.Grid, kind domain.LineKind) *domain.Violation {
	for idx, line := range lines {
		for i := 2; i < len(line); i++ {
			c := line[i]
			if !c.Active() {
				continue
			}
			if line[i-1] == c && line[i-2] == c {
				return &domain.Violation{
					Kind:      domain.ViolationTriple,
					Line:      kind,
					Index:     idx,
					Color:     c,
					Positions: []int{i - 2, i - 1, i},
				}
			}
		}
	}
	return nil
}
