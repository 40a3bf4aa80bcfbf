package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
	"svw.info/puzzlebook/internal/solver"
)

func TestGenerateEasy(t *testing.T) {
	g := NewSudoku(Options{})
	p, stats, err := g.Generate(context.Background(), 42, domain.Easy)
	require.NoError(t, err)
	require.Equal(t, domain.FamilySudoku, p.Family)
	require.Equal(t, domain.Easy, p.Difficulty)
	require.Equal(t, int64(42), p.Seed)
	require.NotNil(t, p.Sudoku)
	require.Positive(t, stats.Nodes)

	clues := p.Sudoku.ClueCount()
	require.GreaterOrEqual(t, clues, 36)
	require.LessOrEqual(t, clues, 45)

	// Every clue agrees with the stored solution.
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if v := p.Sudoku.Givens[r][c]; v != 0 {
				require.Equal(t, p.Sudoku.Solution[r][c], v)
			}
		}
	}
}

func TestGenerateUniqueSolution(t *testing.T) {
	g := NewSudoku(Options{})
	p, _, err := g.Generate(context.Background(), 7, domain.Easy)
	require.NoError(t, err)

	topo := grid.NewSudoku()
	values := make([]uint8, 0, topo.Cells())
	want := make([]uint8, 0, topo.Cells())
	for r := 0; r < domain.GridSize; r++ {
		values = append(values, p.Sudoku.Givens[r][:]...)
		want = append(want, p.Sudoku.Solution[r][:]...)
	}
	res := solver.Count(context.Background(), values, topo, solver.Options{})
	require.Equal(t, solver.Unique, res.Outcome)
	require.Equal(t, want, res.Solution)
}

func TestGenerateReproducible(t *testing.T) {
	a, _, err := NewSudoku(Options{}).Generate(context.Background(), 99, domain.Easy)
	require.NoError(t, err)
	b, _, err := NewSudoku(Options{}).Generate(context.Background(), 99, domain.Easy)
	require.NoError(t, err)
	require.Equal(t, a.Sudoku.Givens, b.Sudoku.Givens)
	require.Equal(t, a.Sudoku.Solution, b.Sudoku.Solution)
}

func TestGenerateNoIsolatedCells(t *testing.T) {
	g := NewSudoku(Options{})
	p, _, err := g.Generate(context.Background(), 3, domain.Medium)
	require.NoError(t, err)

	topo := grid.NewSudoku()
	values := make([]uint8, 0, topo.Cells())
	for r := 0; r < domain.GridSize; r++ {
		values = append(values, p.Sudoku.Givens[r][:]...)
	}
	require.False(t, hasIsolatedCell(values, topo))
}

func TestGenerateExhaustsBudget(t *testing.T) {
	// A one-node solver budget can never produce a full grid, so every
	// attempt fails and the generator reports exhaustion.
	g := NewSudoku(Options{Solver: solver.Options{MaxNodes: 1}, MaxAttempts: 2})
	_, _, err := g.Generate(context.Background(), 1, domain.Easy)
	require.ErrorIs(t, err, ErrGenerationExhausted)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewSudoku(Options{}).Generate(ctx, 1, domain.Easy)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHasIsolatedCell(t *testing.T) {
	topo := grid.NewSudoku()
	values := make([]uint8, 81)
	// A lone clue far from cell (0,0): cell (0,0) shares no group with it.
	values[4*9+4] = 5
	require.True(t, hasIsolatedCell(values, topo))

	// One clue per row covers every cell through its row group.
	for i := 0; i < 9; i++ {
		values[i*9+i] = uint8(i + 1)
	}
	require.False(t, hasIsolatedCell(values, topo))
}
