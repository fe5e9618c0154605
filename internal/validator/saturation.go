package validator

import "svw.info/takuzu/internal/domain"

// checkSaturation finds the first line where one color holds a strict
// majority (2*count > length). Red is tried before blue within a line.
func checkSaturation(g domain.Grid) *domain.Violation {
	if v := saturationInLines(g, domain.LineRow); v != nil {
		return v
	}
	return saturationInLines(g.Columns(), domain.LineColumn)
}

func saturationInLines(lines domain.Grid, kind domain.LineKind) *domain.Violation {
	for idx, line := range lines {
		for _, c := range activeColors {
			pos := positionsOf(line, c)
			if 2*len(pos) > len(line) {
				return &domain.Violation{
					Kind:      domain.ViolationSaturation,
					Line:      kind,
					Index:     idx,
					Color:     c,
					Positions: pos,
				}
			}
		}
	}
	return nil
}
