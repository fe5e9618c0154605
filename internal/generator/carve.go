package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/ports"
)

// Boards must be even-sided: a full odd-length line always gives one color a
// strict majority.
var errBadSize = errors.New("generator: size must be even and at least 4")

func targetGivens(size int, d domain.Difficulty) int {
	cells := size * size
	switch d {
	case domain.Easy:
		return cells * 45 / 100
	case domain.Medium:
		return cells * 35 / 100
	default:
		return cells / 4 // Hard
	}
}

// Generate creates a puzzle from seed at the target difficulty. The result is
// always finishable by deduction alone.
func (g *CarveGenerator) Generate(ctx context.Context, seed int64, size int, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if size < 4 || size%2 != 0 {
		return nil, ports.Stats{}, fmt.Errorf("%w: got %d", errBadSize, size)
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) full random valid board
	full := domain.NewGrid(size, size)
	if !fillRandom(ctx, rng, full, 0) {
		return nil, ports.Stats{}, context.Canceled
	}

	// 2) carve cells while the deductive solver still recovers the board
	puz := full.Clone()
	fixed := make([][]bool, size)
	for r := range fixed {
		fixed[r] = make([]bool, size)
		for c := range fixed[r] {
			fixed[r][c] = true
		}
	}
	positions := rng.Perm(size * size)

	target := targetGivens(size, diff)
	deadline := start.Add(900 * time.Millisecond)
	st := ports.Stats{}

	for _, pos := range positions {
		if time.Now().After(deadline) || ctx.Err() != nil {
			break
		}
		if countGivens(puz) <= target {
			break
		}
		r, c := pos/size, pos%size
		old := puz[r][c]
		puz[r][c] = domain.Empty
		fixed[r][c] = false
		sol, ss, err := g.Solver.Solve(ctx, puz)
		st.Probes += ss.Probes
		if err != nil || sol.Violation != nil || !sol.Grid.Equal(full) {
			// revert
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Grid:       puz,
		Fixed:      fixed,
		CreatedAt:  time.Now().UnixNano(),
	}
	st.Duration = time.Since(start)
	return p, st, nil
}

func countGivens(g domain.Grid) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v != domain.Empty {
				n++
			}
		}
	}
	return n
}

// fillRandom fills the grid cell by cell in row-major order, trying the two
// colors in random order and backtracking on dead ends.
func fillRandom(ctx context.Context, rng *rand.Rand, g domain.Grid, pos int) bool {
	if ctx.Err() != nil {
		return false
	}
	size := g.Rows()
	if pos == size*size {
		return true
	}
	r, c := pos/size, pos%size
	colors := [2]domain.Color{domain.Red, domain.Blue}
	if rng.Intn(2) == 1 {
		colors[0], colors[1] = colors[1], colors[0]
	}
	for _, col := range colors {
		if canPlace(g, r, c, col) {
			g[r][c] = col
			if fillRandom(ctx, rng, g, pos+1) {
				return true
			}
			g[r][c] = domain.Empty
		}
	}
	return false
}

// canPlace checks the cell against the three rules, looking only backwards
// since cells before (r,c) in row-major order are the only filled ones.
func canPlace(g domain.Grid, r, c int, col domain.Color) bool {
	size := g.Rows()
	// no run of three ending here
	if c >= 2 && g[r][c-1] == col && g[r][c-2] == col {
		return false
	}
	if r >= 2 && g[r-1][c] == col && g[r-2][c] == col {
		return false
	}
	// balance: each color fills at most half a line
	half := size / 2
	n := 1
	for j := 0; j < c; j++ {
		if g[r][j] == col {
			n++
		}
	}
	if n > half {
		return false
	}
	n = 1
	for i := 0; i < r; i++ {
		if g[i][c] == col {
			n++
		}
	}
	if n > half {
		return false
	}
	// completed lines must not repeat an earlier one
	if c == size-1 {
		for i := 0; i < r; i++ {
			if sameRow(g, i, r, c, col) {
				return false
			}
		}
	}
	if r == size-1 {
		for j := 0; j < c; j++ {
			if sameCol(g, j, c, r, col) {
				return false
			}
		}
	}
	return true
}

// sameRow compares full row i against row r with g[r][last] taken as col.
func sameRow(g domain.Grid, i, r, last int, col domain.Color) bool {
	for j := 0; j < last; j++ {
		if g[i][j] != g[r][j] {
			return false
		}
	}
	return g[i][last] == col
}

// sameCol compares full column j against column c with g[last][c] taken as col.
func sameCol(g domain.Grid, j, c, last int, col domain.Color) bool {
	for i := 0; i < last; i++ {
		if g[i][j] != g[i][c] {
			return false
		}
	}
	return g[last][j] == col
}
