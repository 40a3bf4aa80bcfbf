// Package generator produces Sudoku puzzle records with a proven unique
// solution at a requested difficulty.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/puzzlebook/internal/difficulty"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
	"svw.info/puzzlebook/internal/ports"
	"svw.info/puzzlebook/internal/solver"
)

// ErrGenerationExhausted reports that no valid puzzle emerged within the
// attempt budget. The caller gets this rather than a substandard puzzle.
var ErrGenerationExhausted = errors.New("generation budget exhausted")

// Options tune the generator. Zero values select defaults.
type Options struct {
	Policy      difficulty.Policy
	Solver      solver.Options
	MaxAttempts int // full regeneration attempts; default 20
}

// Sudoku generates puzzles by carving clues out of a full random
// solution while re-proving uniqueness after every removal.
type Sudoku struct {
	topo *grid.Topology
	opts Options
}

// NewSudoku wires a generator over the standard 9x9 topology.
func NewSudoku(opts Options) *Sudoku {
	if opts.Policy.Sudoku == nil {
		opts.Policy = difficulty.DefaultPolicy()
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 20
	}
	return &Sudoku{topo: grid.NewSudoku(), opts: opts}
}

// Generate builds a puzzle record for the requested difficulty. The seed
// makes the result reproducible.
func (g *Sudoku) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	want := g.opts.Policy.ClueRange(diff)
	nodes := 0

	for attempt := 0; attempt < g.opts.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		full, n := g.fullSolution(ctx, rng)
		nodes += n
		if full == nil {
			continue
		}
		givens, n := g.carve(ctx, full, want, rng)
		nodes += n
		if givens == nil {
			continue
		}
		clues := countClues(givens)
		if clues > want.Hi || clues < domain.MinClues {
			continue
		}
		if hasIsolatedCell(givens, g.topo) {
			continue
		}

		p := &domain.Puzzle{
			Family:     domain.FamilySudoku,
			Difficulty: diff,
			Seed:       seed,
			CreatedAt:  time.Now().UnixNano(),
			Sudoku:     &domain.SudokuPayload{},
		}
		for i, v := range givens {
			p.Sudoku.Givens[i/domain.GridSize][i%domain.GridSize] = v
		}
		for i, v := range full {
			p.Sudoku.Solution[i/domain.GridSize][i%domain.GridSize] = v
		}
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
		fmt.Errorf("%w: no %s puzzle after %d attempts", ErrGenerationExhausted, diff, g.opts.MaxAttempts)
}

// fullSolution draws one complete valid grid from a randomized search
// over the empty board.
func (g *Sudoku) fullSolution(ctx context.Context, rng *rand.Rand) ([]uint8, int) {
	opts := g.opts.Solver
	opts.Rand = rng
	res := solver.Count(ctx, make([]uint8, g.topo.Cells()), g.topo, opts)
	return res.Solution, res.Nodes
}

// carve clears cells in random order, keeping each removal only if the
// puzzle stays uniquely solvable, until the clue count reaches the low
// end of the target range or no further cell can go.
func (g *Sudoku) carve(ctx context.Context, full []uint8, want difficulty.Range, rng *rand.Rand) ([]uint8, int) {
	values := append([]uint8(nil), full...)
	order := rng.Perm(len(values))
	clues := len(values)
	nodes := 0

	for _, pos := range order {
		if clues <= want.Lo {
			break
		}
		if clues-1 < domain.MinClues {
			break
		}
		old := values[pos]
		values[pos] = 0
		res := solver.Count(ctx, values, g.topo, g.opts.Solver)
		nodes += res.Nodes
		if res.Outcome != solver.Unique {
			values[pos] = old
			continue
		}
		clues--
	}
	return values, nodes
}

func countClues(values []uint8) int {
	n := 0
	for _, v := range values {
		if v != 0 {
			n++
		}
	}
	return n
}

// hasIsolatedCell reports whether any empty cell shares no row, column,
// or box with a clue. Isolated cells correlate with unplayable puzzles
// even when formally unique.
func hasIsolatedCell(values []uint8, topo *grid.Topology) bool {
	for cell, v := range values {
		if v != 0 {
			continue
		}
		seen := false
		for _, gi := range topo.GroupsOf(cell) {
			for _, other := range topo.Groups[gi] {
				if values[other] != 0 {
					seen = true
					break
				}
			}
			if seen {
				break
			}
		}
		if !seen {
			return true
		}
	}
	return false
}
