package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/puzzlebook/internal/domain"
)

func samplePuzzle(id string, created int64) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Family:     domain.FamilySudoku,
		Difficulty: domain.Medium,
		Seed:       42,
		CreatedAt:  created,
		Sudoku:     &domain.SudokuPayload{},
	}
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			p.Sudoku.Solution[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	p.Sudoku.Givens = p.Sudoku.Solution
	return p
}

func TestFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewFS(t.TempDir())
	p := samplePuzzle("sudoku-42", 100)

	require.NoError(t, st.Save(ctx, p))
	got, err := st.Load(ctx, "sudoku-42")
	require.NoError(t, err)
	require.Equal(t, p, got)

	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, "sudoku-42", metas[0].ID)
	require.Equal(t, domain.FamilySudoku, metas[0].Family)

	all, err := st.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestFSLayout(t *testing.T) {
	dir := t.TempDir()
	st := NewFS(dir)
	require.NoError(t, st.Save(context.Background(), samplePuzzle("sudoku-1", 1)))
	_, err := os.Stat(filepath.Join(dir, "sudoku", "medium", "sudoku-1.json"))
	require.NoError(t, err)
}

func TestFSRejectsMissingID(t *testing.T) {
	st := NewFS(t.TempDir())
	p := samplePuzzle("", 1)
	require.Error(t, st.Save(context.Background(), p))
	require.Error(t, st.Save(context.Background(), nil))
}

func TestFSLoadMissing(t *testing.T) {
	st := NewFS(t.TempDir())
	_, err := st.Load(context.Background(), "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	st := NewFS(dir)
	require.NoError(t, st.Save(context.Background(), samplePuzzle("a", 1)))
	require.NoError(t, st.Save(context.Background(), samplePuzzle("b", 2)))

	got, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// A directory that does not exist yet is just empty, not an error.
	got, err = LoadDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	defer st.Close()

	p := samplePuzzle("sudoku-42", 100)
	require.NoError(t, st.Save(ctx, p))

	got, err := st.Load(ctx, "sudoku-42")
	require.NoError(t, err)
	require.Equal(t, p, got)

	_, err = st.Load(ctx, "nope")
	require.Error(t, err)
}

func TestSQLiteUpsert(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	defer st.Close()

	p := samplePuzzle("sudoku-1", 1)
	require.NoError(t, st.Save(ctx, p))
	p.Difficulty = domain.Hard
	require.NoError(t, st.Save(ctx, p))

	got, err := st.Load(ctx, "sudoku-1")
	require.NoError(t, err)
	require.Equal(t, domain.Hard, got.Difficulty)

	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
}

func TestSQLiteListOrder(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(ctx, samplePuzzle("later", 200)))
	require.NoError(t, st.Save(ctx, samplePuzzle("earlier", 100)))

	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"earlier", "later"}, []string{metas[0].ID, metas[1].ID})

	all, err := st.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "earlier", all[0].ID)
}

func TestSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	require.Error(t, err)
}
