package validator

import (
	"testing"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/gridio"
)

func TestTripleInRow(t *testing.T) {
	g := gridio.MustParse("rrr")
	v := checkTriples(g)
	if v == nil {
		t.Fatal("expected a triple violation")
	}
	if v.Kind != domain.ViolationTriple || v.Line != domain.LineRow || v.Index != 0 {
		t.Fatalf("wrong hit: %+v", v)
	}
	if v.Color != domain.Red {
		t.Fatalf("wrong color: %s", v.Color)
	}
	if len(v.Positions) != 3 || v.Positions[0] != 0 || v.Positions[2] != 2 {
		t.Fatalf("wrong positions: %v", v.Positions)
	}
}

func TestTripleInColumnSwapsCoordinates(t *testing.T) {
	// No row is long enough to hold a run; column 1 is.
	g := gridio.MustParse(`
		.b
		rb
		.b
	`)
	v := checkTriples(g)
	if v == nil {
		t.Fatal("expected a column triple")
	}
	if v.Line != domain.LineColumn || v.Index != 1 || v.Color != domain.Blue {
		t.Fatalf("wrong hit: %+v", v)
	}
	if len(v.Positions) != 3 || v.Positions[0] != 0 || v.Positions[1] != 1 || v.Positions[2] != 2 {
		t.Fatalf("positions should be row indices 0..2, got %v", v.Positions)
	}
}

func TestTripleIgnoresEmptyAndShortRuns(t *testing.T) {
	for _, tc := range []string{
		"rr.rr",  // empty splits the run
		"rr",     // too short
		"rbrbrb", // alternating
		".....",  // empty line
	} {
		if v := triplesInLines(gridio.MustParse(tc), domain.LineRow); v != nil {
			t.Fatalf("%q: unexpected violation %+v", tc, v)
		}
	}
}

func TestTripleEarliestRowWins(t *testing.T) {
	g := gridio.MustParse(`
		.bbb.
		rrr..
	`)
	v := checkTriples(g)
	if v == nil || v.Index != 0 || v.Color != domain.Blue {
		t.Fatalf("row 0 should win: %+v", v)
	}
}
