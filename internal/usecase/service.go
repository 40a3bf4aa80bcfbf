// Package usecase wires providers into the operations the CLI exposes.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/puzzlebook/internal/batch"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/ports"
)

type Service struct {
	Sudoku    ports.Generator
	Crossword ports.Builder
	Validator ports.Validator
	Storage   ports.Storage
	Workers   int
}

func NewService(g ports.Generator, b ports.Builder, v ports.Validator, st ports.Storage, workers int) *Service {
	return &Service{Sudoku: g, Crossword: b, Validator: v, Storage: st, Workers: workers}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Generate builds one puzzle of the requested family. Sudoku honors the
// difficulty; crossword difficulty is graded from the produced grid.
func (u *Service) Generate(ctx context.Context, family domain.Family, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	switch family {
	case domain.FamilySudoku:
		if u.Sudoku == nil {
			return nil, ports.Stats{}, errNotConfigured
		}
		return u.Sudoku.Generate(ctx, seed, d)
	case domain.FamilyCrossword:
		if u.Crossword == nil {
			return nil, ports.Stats{}, errNotConfigured
		}
		p, err := u.Crossword.Build(ctx, seed)
		return p, ports.Stats{}, err
	default:
		return nil, ports.Stats{}, fmt.Errorf("unknown family %d", int(family))
	}
}

// Validate reports on a single record.
func (u *Service) Validate(ctx context.Context, p *domain.Puzzle) (*domain.Report, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, p), nil
}

// ValidateAll fans validation out over the configured worker count.
func (u *Service) ValidateAll(ctx context.Context, puzzles []*domain.Puzzle) ([]batch.Result, batch.Summary, error) {
	if u.Validator == nil {
		return nil, batch.Summary{}, errNotConfigured
	}
	runner := &batch.Runner{Validator: u.Validator, Workers: u.Workers}
	results, summary := runner.Run(ctx, puzzles)
	return results, summary, nil
}

// Persistence.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

func (u *Service) All(ctx context.Context) ([]*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.All(ctx)
}
