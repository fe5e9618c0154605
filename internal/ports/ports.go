package ports

import (
	"context"
	"time"

	"svw.info/takuzu/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	// Probes counts candidate completions that were validated.
	Probes   int
	Duration time.Duration
}

// Solver derives forced moves until none remain.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (*domain.Solution, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, size int, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator reports the first rule violation on a board, or nil.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (*domain.Violation, error)
}

// Hinter returns the next provably forced move, if any.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
