package validator

import (
	"fmt"

	"svw.info/takuzu/internal/domain"
)

// checkDuplicates finds two lines of the same kind sharing the exact position
// list of a color that covers at least half the line (2*count >= length, a
// deliberately looser threshold than saturation's strict majority). The map
// keys a (color, positions) shape to the earliest line that showed it; the
// second line with the same shape is the hit.
func checkDuplicates(g domain.Grid) *domain.Violation {
	if v := duplicatesInLines(g, domain.LineRow); v != nil {
		return v
	}
	return duplicatesInLines(g.Columns(), domain.LineColumn)
}

func duplicatesInLines(lines domain.Grid, kind domain.LineKind) *domain.Violation {
	seen := make(map[string]int)
	for idx, line := range lines {
		for _, c := range activeColors {
			pos := positionsOf(line, c)
			if 2*len(pos) < len(line) {
				continue
			}
			key := shapeKey(c, pos)
			if first, ok := seen[key]; ok {
				return &domain.Violation{
					Kind: domain.ViolationDuplicate,
					Line: kind,
					Pair: [2]int{first, idx},
				}
			}
			seen[key] = idx
		}
	}
	return nil
}

func shapeKey(c domain.Color, pos []int) string {
	return fmt.Sprintf("%d:%v", c, pos)
}
