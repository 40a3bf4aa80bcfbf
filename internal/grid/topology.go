// Package grid provides the fixed cell geometry shared by both puzzle
// families: constraint-group topology for Sudoku boards and black/white
// patterns with derived word slots for crosswords.
package grid

import "svw.info/puzzlebook/internal/domain"

// Topology is a fixed set of constraint groups over an N*N board.
// Each group holds exactly N cell indices that must contain each value
// 1..N exactly once. Groups never change after construction; only cell
// values vary during solving.
type Topology struct {
	N          int
	Groups     [][]int
	cellGroups [][]int
}

// NewSudoku returns the standard 9x9 topology: 9 rows, 9 columns, and
// 9 boxes, 27 groups in total.
func NewSudoku() *Topology {
	n := domain.GridSize
	box := domain.BoxSize
	t := &Topology{N: n}
	for r := 0; r < n; r++ {
		g := make([]int, n)
		for c := 0; c < n; c++ {
			g[c] = r*n + c
		}
		t.Groups = append(t.Groups, g)
	}
	for c := 0; c < n; c++ {
		g := make([]int, n)
		for r := 0; r < n; r++ {
			g[r] = r*n + c
		}
		t.Groups = append(t.Groups, g)
	}
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			g := make([]int, 0, n)
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					g = append(g, (br+dr)*n+bc+dc)
				}
			}
			t.Groups = append(t.Groups, g)
		}
	}
	t.index()
	return t
}

// index builds the O(1) cell-to-groups lookup.
func (t *Topology) index() {
	t.cellGroups = make([][]int, t.N*t.N)
	for gi, g := range t.Groups {
		for _, cell := range g {
			t.cellGroups[cell] = append(t.cellGroups[cell], gi)
		}
	}
}

// GroupsOf returns the indices of every group owning the cell.
func (t *Topology) GroupsOf(cell int) []int { return t.cellGroups[cell] }

// Cells returns the total cell count.
func (t *Topology) Cells() int { return t.N * t.N }
