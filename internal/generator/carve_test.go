package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/solver"
	"svw.info/takuzu/internal/validator"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewDeductiveSolver()
	g := NewCarveGenerator(s)

	cases := []struct {
		name string
		size int
		diff domain.Difficulty
	}{
		{"easy", 6, domain.Easy},
		{"medium", 6, domain.Medium},
		{"hard", 6, domain.Hard},
		{"small", 4, domain.Medium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.size, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			if st.Duration > 2*time.Second {
				t.Fatalf("generation too slow for %s: %v", tc.name, st.Duration)
			}
			if p.Grid.Rows() != tc.size || p.Grid.Cols() != tc.size {
				t.Fatalf("wrong board shape: %dx%d", p.Grid.Rows(), p.Grid.Cols())
			}
			if v := validator.Check(p.Grid); v != nil {
				t.Fatalf("generated board invalid: %s", v)
			}
			givens := countGivens(p.Grid)
			if givens < targetGivens(tc.size, tc.diff) || givens > tc.size*tc.size {
				t.Fatalf("implausible givens count for %s: %d", tc.name, givens)
			}
			// every fixed cell is a given and vice versa
			for r := range p.Grid {
				for c := range p.Grid[r] {
					if p.Fixed[r][c] != (p.Grid[r][c] != domain.Empty) {
						t.Fatalf("fixed mask out of sync at r=%d c=%d", r, c)
					}
				}
			}
			// the puzzle must fall to deduction alone
			sol, _, err := s.Solve(ctx, p.Grid)
			if err != nil {
				t.Fatalf("solve-back failed: %v", err)
			}
			if sol.Violation != nil || !sol.Grid.Full() {
				t.Fatalf("puzzle for %s is not deduction-solvable", tc.name)
			}
			if v := validator.Check(sol.Grid); v != nil {
				t.Fatalf("solved board invalid: %s", v)
			}
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	s := solver.NewDeductiveSolver()
	g := NewCarveGenerator(s)
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 7, 4, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := g.Generate(ctx, 7, 4, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !a.Grid.Equal(b.Grid) {
		t.Fatal("same seed should give the same puzzle")
	}
}

func TestGenerateRejectsBadSizes(t *testing.T) {
	g := NewCarveGenerator(solver.NewDeductiveSolver())
	for _, size := range []int{0, 2, 5, 7} {
		if _, _, err := g.Generate(context.Background(), 1, size, domain.Easy); err == nil {
			t.Fatalf("size %d should be rejected", size)
		}
	}
}
