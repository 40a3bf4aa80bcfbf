package difficulty

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
)

func TestClueRangeClampsToFloor(t *testing.T) {
	p := Policy{Sudoku: map[domain.Difficulty]Range{
		domain.Expert: {10, 24},
	}}
	r := p.ClueRange(domain.Expert)
	require.Equal(t, domain.MinClues, r.Lo)
	require.Equal(t, 24, r.Hi)

	// Unknown difficulty falls back to the medium band.
	r = p.ClueRange(domain.Hard)
	require.Equal(t, Range{28, 35}, r)
}

func TestRangeContains(t *testing.T) {
	r := Range{20, 27}
	require.True(t, r.Contains(20))
	require.True(t, r.Contains(27))
	require.False(t, r.Contains(19))
	require.False(t, r.Contains(28))
}

func TestGradeSudoku(t *testing.T) {
	p := DefaultPolicy()
	require.Equal(t, domain.Easy, p.GradeSudoku(40, false))
	require.Equal(t, domain.Medium, p.GradeSudoku(30, false))
	require.Equal(t, domain.Hard, p.GradeSudoku(22, false))
	require.Equal(t, domain.Expert, p.GradeSudoku(17, false))
}

func TestGradeSudokuSinglesCap(t *testing.T) {
	p := DefaultPolicy()
	// A grid that falls to naked singles is never hard, whatever the
	// clue count says.
	require.Equal(t, domain.Medium, p.GradeSudoku(18, true))
	require.Equal(t, domain.Easy, p.GradeSudoku(40, true))
}

func TestGradeCrossword(t *testing.T) {
	// 3x3 open grid, 6 slots: average answer length 3.
	require.Equal(t, domain.Easy, GradeCrossword(0, 6, 3))
	// 15x15, 20% black, 72 slots: average answer length 5.
	require.Equal(t, domain.Medium, GradeCrossword(0.2, 72, 15))
	// Sparse blacks and few, long slots.
	require.Equal(t, domain.Expert, GradeCrossword(0.1, 50, 15))
	// Degenerate input grades medium rather than panicking.
	require.Equal(t, domain.Medium, GradeCrossword(0, 0, 0))
}

var solved = []uint8{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func TestSinglesSolvable(t *testing.T) {
	topo := grid.NewSudoku()

	values := append([]uint8(nil), solved...)
	values[0], values[1], values[2] = 0, 0, 0
	require.True(t, SinglesSolvable(values, topo))

	require.False(t, SinglesSolvable(make([]uint8, 81), topo))
}

func TestSinglesSolvableDoesNotMutate(t *testing.T) {
	topo := grid.NewSudoku()
	values := append([]uint8(nil), solved...)
	values[0] = 0
	before := append([]uint8(nil), values...)
	SinglesSolvable(values, topo)
	require.Equal(t, before, values)
}
