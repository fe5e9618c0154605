package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/gridio"
)

func samplePuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	return &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: d,
		Grid:       gridio.MustParse("rr..\n....\n....\n...."),
		CreatedAt:  1700000000,
		Name:       "sample",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	in := samplePuzzle("p1", domain.Hard)
	if err := fs.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := fs.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.ID != in.ID || out.Difficulty != in.Difficulty || out.Name != in.Name {
		t.Fatalf("metadata mismatch: %+v", out)
	}
	if !out.Grid.Equal(in.Grid) {
		t.Fatalf("grid mismatch:\n%s", gridio.Render(out.Grid))
	}
}

func TestSaveRequiresID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), samplePuzzle("", domain.Easy)); err == nil {
		t.Fatal("expected an error for missing ID")
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFS(t.TempDir())
	if _, err := fs.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestListAcrossDifficulties(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()
	for id, d := range map[string]domain.Difficulty{
		"a": domain.Easy,
		"b": domain.Medium,
		"c": domain.Hard,
	} {
		if err := fs.Save(ctx, samplePuzzle(id, d)); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}
	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(metas))
	}
	seen := map[string]domain.Difficulty{}
	for _, m := range metas {
		seen[m.ID] = m.Difficulty
	}
	if seen["a"] != domain.Easy || seen["b"] != domain.Medium || seen["c"] != domain.Hard {
		t.Fatalf("difficulties mangled: %v", seen)
	}
}
