package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/gridio"
)

func TestHintSuggestsForcedMove(t *testing.T) {
	g := gridio.MustParse(`
		rr..
		....
		....
		....
	`)
	h, ok, err := NewForced().Hint(context.Background(), g)
	if err != nil || !ok {
		t.Fatalf("expected a hint, ok=%v err=%v", ok, err)
	}
	if h.Move != (domain.Move{Color: domain.Blue, Row: 0, Col: 2}) {
		t.Fatalf("wrong move: %s", h.Move)
	}
	if h.Message == "" || !strings.Contains(h.Message, "row 0") {
		t.Fatalf("unhelpful message: %q", h.Message)
	}
	if h.Because == "" {
		t.Fatal("missing justification")
	}
}

func TestHintNoneWhenNothingForced(t *testing.T) {
	g := gridio.MustParse(`
		rrbb
		bbrr
		....
		....
	`)
	_, ok, err := NewForced().Hint(context.Background(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("no move should be forced on an ambiguous board")
	}
}
