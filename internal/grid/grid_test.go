package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/puzzlebook/internal/domain"
)

func TestSudokuTopologyShape(t *testing.T) {
	topo := NewSudoku()
	require.Equal(t, 27, len(topo.Groups))
	for gi, g := range topo.Groups {
		require.Len(t, g, topo.N, "group %d", gi)
	}
	// No two groups hold the same cell set.
	seen := map[string]bool{}
	for _, g := range topo.Groups {
		key := fmt.Sprint(g)
		require.False(t, seen[key], "duplicate group %s", key)
		seen[key] = true
	}
}

func TestSudokuCellOwnership(t *testing.T) {
	topo := NewSudoku()
	for cell := 0; cell < topo.Cells(); cell++ {
		require.Len(t, topo.GroupsOf(cell), 3, "cell %d must sit in a row, a column, and a box", cell)
	}
	// Spot check: cell (4,7) belongs to row 4, column 7, box 5.
	require.ElementsMatch(t, []int{4, 9 + 7, 18 + 5}, topo.GroupsOf(4*9+7))
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern([]string{"..#", "...", "#.."})
	require.NoError(t, err)
	require.True(t, p.At(0, 2))
	require.True(t, p.At(2, 0))
	require.False(t, p.At(1, 1))
	require.InDelta(t, 2.0/9.0, p.BlackRatio(), 1e-9)
	require.True(t, p.Symmetric())

	_, err = ParsePattern([]string{"..", "..."})
	require.Error(t, err)
}

func TestMinRunLength(t *testing.T) {
	p, err := ParsePattern([]string{
		"....#",
		".....",
		"#...#",
		".....",
		"#....",
	})
	require.NoError(t, err)
	// Column 4 has the single-cell run at row 1 bounded by blacks... the
	// shortest run is the 1-cell column run between (0,4)# and (2,4)#.
	require.Equal(t, 1, p.MinRunLength())

	open := NewPattern(4)
	require.Equal(t, 4, open.MinRunLength())
}

func TestSlotsDerivationAndNumbering(t *testing.T) {
	// 3x3, all white: three across and three down slots, numbered like a
	// standard published grid.
	p, err := ParsePattern([]string{"...", "...", "..."})
	require.NoError(t, err)
	slots := Slots(p)
	require.Len(t, slots, 6)

	require.Equal(t, domain.Across, slots[0].Direction)
	require.Equal(t, 1, slots[0].Number)
	require.Equal(t, domain.Down, slots[1].Direction)
	require.Equal(t, 1, slots[1].Number)
	// Cells 0,1,2 start down slots; rows 1 and 2 start across slots 4, 5.
	require.Equal(t, 3, slots[3].Number)
	require.Equal(t, 4, slots[4].Number)
	require.Equal(t, 5, slots[5].Number)

	require.InDelta(t, 0.5, DownRatio(slots), 1e-9)
}

func TestSlotsSkipSingleCellRuns(t *testing.T) {
	// Middle row black: only across slots remain; each column run is a
	// single cell and yields no down slot.
	p, err := ParsePattern([]string{"...", "###", "..."})
	require.NoError(t, err)
	slots := Slots(p)
	require.Len(t, slots, 2)
	for _, s := range slots {
		require.Equal(t, domain.Across, s.Direction)
	}
	require.Zero(t, DownRatio(slots))
}

func TestSlotWord(t *testing.T) {
	p, err := ParsePattern([]string{"...", "...", "..."})
	require.NoError(t, err)
	slots := Slots(p)
	rows := []string{"CAT", "ORE", "WEN"}
	require.Equal(t, "CAT", slots[0].Word(rows)) // 1-across
	require.Equal(t, "COW", slots[1].Word(rows)) // 1-down
}

func TestClues(t *testing.T) {
	p, err := ParsePattern([]string{"...", "...", "..."})
	require.NoError(t, err)
	slots := Slots(p)
	clues := Clues(slots)
	require.Len(t, clues, len(slots))
	for i, c := range clues {
		require.Equal(t, slots[i].Number, c.Number)
		require.Equal(t, slots[i].Direction, c.Direction)
		require.Equal(t, slots[i].Length, c.Length)
	}
}
