package validator

import (
	"context"
	"strconv"

	"svw.info/puzzlebook/internal/difficulty"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/solver"
)

func (p *Pipeline) sudokuStructure(_ context.Context, puz *domain.Puzzle, r *run) {
	if puz.Sudoku == nil {
		r.add(domain.SeverityError, CategoryStructure, "sudoku record has no sudoku payload")
		return
	}
	if puz.Crossword != nil {
		r.add(domain.SeverityError, CategoryStructure, "sudoku record carries a crossword payload")
	}
	s := puz.Sudoku
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			if v := s.Givens[row][col]; v > domain.GridSize {
				r.add(domain.SeverityError, CategoryStructure, "clue value %d at r%dc%d out of range", v, row, col)
			}
			if v := s.Solution[row][col]; v < 1 || v > domain.GridSize {
				r.add(domain.SeverityError, CategoryStructure, "solution value %d at r%dc%d out of range", v, row, col)
			}
		}
	}
}

func (p *Pipeline) sudokuContent(_ context.Context, puz *domain.Puzzle, r *run) {
	s := puz.Sudoku
	p.groupDuplicates(flatten(&s.Givens), "clue grid", r)
	p.groupDuplicates(flatten(&s.Solution), "solution", r)
}

// groupDuplicates flags any value repeated within a constraint group.
func (p *Pipeline) groupDuplicates(values []uint8, what string, r *run) {
	for gi, cells := range p.topo.Groups {
		var seen uint16
		for _, cell := range cells {
			v := values[cell]
			if v == 0 || int(v) > p.topo.N {
				continue
			}
			bit := uint16(1) << (v - 1)
			if seen&bit != 0 {
				r.add(domain.SeverityError, CategoryContent,
					"duplicate value %d in %s %s", v, what, groupName(gi))
			}
			seen |= bit
		}
	}
}

func groupName(gi int) string {
	switch {
	case gi < domain.GridSize:
		return "row " + strconv.Itoa(gi)
	case gi < 2*domain.GridSize:
		return "column " + strconv.Itoa(gi-domain.GridSize)
	default:
		return "box " + strconv.Itoa(gi-2*domain.GridSize)
	}
}

func (p *Pipeline) sudokuConsistency(_ context.Context, puz *domain.Puzzle, r *run) {
	s := puz.Sudoku
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			g := s.Givens[row][col]
			if g != 0 && g != s.Solution[row][col] {
				r.add(domain.SeverityError, CategoryConsistency,
					"clue %d at r%dc%d disagrees with solution %d", g, row, col, s.Solution[row][col])
			}
		}
	}

	for row := 0; row < domain.GridSize; row++ {
		if emptyRow(s, row) {
			r.add(p.cfg.EmptyLineSeverity, CategoryConsistency, "row %d has no clues", row)
		}
	}
	for col := 0; col < domain.GridSize; col++ {
		if emptyCol(s, col) {
			r.add(p.cfg.EmptyLineSeverity, CategoryConsistency, "column %d has no clues", col)
		}
	}

	clues := s.ClueCount()
	if clues < domain.MinClues {
		r.add(domain.SeverityError, CategoryConsistency,
			"clue count %d below the %d-clue minimum", clues, domain.MinClues)
		return
	}
	if want := p.cfg.Policy.ClueRange(puz.Difficulty); !want.Contains(clues) {
		r.add(domain.SeverityWarning, CategoryConsistency,
			"clue count %d outside %s range %d-%d", clues, puz.Difficulty, want.Lo, want.Hi)
	}
	singles := difficulty.SinglesSolvable(flatten(&s.Givens), p.topo)
	if actual := p.cfg.Policy.GradeSudoku(clues, singles); actual != puz.Difficulty {
		r.add(domain.SeverityWarning, CategoryConsistency,
			"declared difficulty %s, metrics grade %s", puz.Difficulty, actual)
	}
}

func (p *Pipeline) sudokuSolvability(ctx context.Context, puz *domain.Puzzle, r *run) {
	s := puz.Sudoku
	res := solver.Count(ctx, flatten(&s.Givens), p.topo, p.cfg.Solver)
	switch res.Outcome {
	case solver.NoSolution:
		r.add(domain.SeverityError, CategorySolvability, "clue grid has no solution")
	case solver.Multiple:
		r.add(domain.SeverityError, CategorySolvability, "not uniquely solvable: %d solutions found", res.Count)
	case solver.Indeterminate:
		r.add(domain.SeverityError, CategorySolvability,
			"solver budget exhausted after %d nodes; solvability indeterminate", res.Nodes)
	case solver.Unique:
		if !equal(res.Solution, flatten(&s.Solution)) {
			r.add(domain.SeverityError, CategorySolvability, "solver solution differs from stored solution")
		}
	}
}

func flatten(g *[domain.GridSize][domain.GridSize]uint8) []uint8 {
	out := make([]uint8, 0, domain.GridSize*domain.GridSize)
	for r := 0; r < domain.GridSize; r++ {
		out = append(out, g[r][:]...)
	}
	return out
}

func equal(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func emptyRow(s *domain.SudokuPayload, row int) bool {
	for col := 0; col < domain.GridSize; col++ {
		if s.Givens[row][col] != 0 {
			return false
		}
	}
	return true
}

func emptyCol(s *domain.SudokuPayload, col int) bool {
	for row := 0; row < domain.GridSize; row++ {
		if s.Givens[row][col] != 0 {
			return false
		}
	}
	return true
}
