// Package ports declares the interfaces between use cases and providers.
package ports

import (
	"context"
	"time"

	"svw.info/puzzlebook/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator creates Sudoku puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Builder creates crossword puzzles against an injected lexicon.
type Builder interface {
	Build(ctx context.Context, seed int64) (*domain.Puzzle, error)
}

// Validator produces a report for a finished puzzle record. It never
// mutates the record and is safe to call repeatedly.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) *domain.Report
}

// Storage persists and retrieves puzzle records.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	All(ctx context.Context) ([]*domain.Puzzle, error)
}
