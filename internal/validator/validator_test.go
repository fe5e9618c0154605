package validator

import (
	"testing"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/gridio"
)

// Check must agree with running the three detectors directly.
func TestCheckMatchesDetectors(t *testing.T) {
	boards := map[string]string{
		"clean": `
			rrbb
			bbrr
			rbrb
			brbr
		`,
		"partial": `
			r..b
			.b..
			..r.
			b..r
		`,
		"triple": `
			rrr.
			....
			....
			....
		`,
		"saturated": `
			rrbr
			....
			....
			....
		`,
		"duplicated": `
			rbrb
			rbrb
			b.b.
			....
		`,
	}
	for name, text := range boards {
		t.Run(name, func(t *testing.T) {
			g := gridio.MustParse(text)
			got := Check(g)
			direct := checkTriples(g)
			if direct == nil {
				direct = checkSaturation(g)
			}
			if direct == nil {
				direct = checkDuplicates(g)
			}
			if (got == nil) != (direct == nil) {
				t.Fatalf("Check=%+v, detectors=%+v", got, direct)
			}
			if got != nil && got.Kind != direct.Kind {
				t.Fatalf("Check kind %v, detectors kind %v", got.Kind, direct.Kind)
			}
		})
	}
}

func TestCheckPrecedence(t *testing.T) {
	// The board holds a triple, a saturated line, and duplicate rows at once;
	// the triple wins.
	g := gridio.MustParse(`
		rrrb
		rrrb
		....
		....
	`)
	v := Check(g)
	if v == nil || v.Kind != domain.ViolationTriple {
		t.Fatalf("expected triple first, got %+v", v)
	}
}

func TestCheckCleanBoard(t *testing.T) {
	g := gridio.MustParse(`
		rrbb
		bbrr
		rbrb
		brbr
	`)
	if v := Check(g); v != nil {
		t.Fatalf("valid board flagged: %s", v)
	}
}
