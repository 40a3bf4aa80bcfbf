package validator

import (
	"context"

	"svw.info/puzzlebook/internal/difficulty"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
)

func (p *Pipeline) crosswordStructure(_ context.Context, puz *domain.Puzzle, r *run) {
	cw := puz.Crossword
	if cw == nil {
		r.add(domain.SeverityError, CategoryStructure, "crossword record has no crossword payload")
		return
	}
	if puz.Sudoku != nil {
		r.add(domain.SeverityError, CategoryStructure, "crossword record carries a sudoku payload")
	}
	if cw.Size <= 0 || len(cw.Grid) != cw.Size || len(cw.Solution) != cw.Size {
		r.add(domain.SeverityError, CategoryStructure,
			"grid/solution row count does not match declared size %d", cw.Size)
		return
	}
	for i, row := range cw.Grid {
		if len(row) != cw.Size {
			r.add(domain.SeverityError, CategoryStructure, "grid row %d has length %d, want %d", i, len(row), cw.Size)
			return
		}
		for c := 0; c < cw.Size; c++ {
			if ch := row[c]; ch != grid.BlackCell && ch != grid.OpenCell && (ch < 'A' || ch > 'Z') {
				r.add(domain.SeverityError, CategoryStructure, "grid cell r%dc%d holds invalid byte %q", i, c, ch)
			}
		}
	}
	for i, row := range cw.Solution {
		if len(row) != cw.Size {
			r.add(domain.SeverityError, CategoryStructure, "solution row %d has length %d, want %d", i, len(row), cw.Size)
			return
		}
		for c := 0; c < cw.Size; c++ {
			if ch := row[c]; ch != grid.BlackCell && (ch < 'A' || ch > 'Z') {
				r.add(domain.SeverityError, CategoryStructure, "solution cell r%dc%d holds invalid byte %q", i, c, ch)
			}
		}
	}
	if r.blocked {
		return
	}

	pattern, err := grid.ParsePattern(cw.Grid)
	if err != nil {
		r.add(domain.SeverityError, CategoryStructure, "unparseable pattern: %v", err)
		return
	}
	if ratio := pattern.BlackRatio(); ratio > p.cfg.MaxBlackRatio {
		r.add(domain.SeverityError, CategoryStructure,
			"black-square ratio %.2f exceeds cap %.2f", ratio, p.cfg.MaxBlackRatio)
	}
	slots := grid.Slots(pattern)
	if len(slots) == 0 {
		r.add(domain.SeverityError, CategoryStructure, "pattern yields no slots")
		return
	}
	for _, s := range slots {
		if s.Length < p.cfg.MinSlotLen {
			r.add(domain.SeverityError, CategoryStructure,
				"slot %d-%s is %d cells, below minimum %d", s.Number, s.Direction, s.Length, p.cfg.MinSlotLen)
		}
	}
	if ratio := grid.DownRatio(slots); ratio < p.cfg.MinDownRatio {
		r.add(domain.SeverityError, CategoryStructure,
			"insufficient down-clue ratio %.2f, floor is %.2f", ratio, p.cfg.MinDownRatio)
	}
}

func (p *Pipeline) crosswordContent(_ context.Context, puz *domain.Puzzle, r *run) {
	cw := puz.Crossword
	pattern, err := grid.ParsePattern(cw.Grid)
	if err != nil {
		r.add(domain.SeverityError, CategoryContent, "unparseable pattern: %v", err)
		return
	}
	slots := grid.Slots(pattern)

	// Every span read from the solution must be a vocabulary entry and
	// no answer may repeat.
	seen := make(map[string]int, len(slots))
	for _, s := range slots {
		word := s.Word(cw.Solution)
		if !p.lex.Contains(word) {
			r.add(domain.SeverityError, CategoryContent,
				"answer %q for %d-%s is not in the lexicon", word, s.Number, s.Direction)
		}
		if prev, dup := seen[word]; dup {
			r.add(domain.SeverityError, CategoryContent,
				"answer %q repeats in slots %d and %d", word, prev, s.Number)
		}
		seen[word] = s.Number
	}

	// Clue metadata must match the slots the pattern derives.
	if len(cw.Clues) != len(slots) {
		r.add(domain.SeverityError, CategoryContent,
			"clue list has %d entries, pattern derives %d slots", len(cw.Clues), len(slots))
		return
	}
	for i, s := range slots {
		c := cw.Clues[i]
		if c.Number != s.Number || c.Row != s.Row || c.Col != s.Col || c.Direction != s.Direction || c.Length != s.Length {
			r.add(domain.SeverityError, CategoryContent,
				"clue %d metadata disagrees with derived slot %d-%s", c.Number, s.Number, s.Direction)
		}
	}

	// Pre-filled grid letters count as clues and must match the solution.
	for row := 0; row < cw.Size; row++ {
		for col := 0; col < cw.Size; col++ {
			ch := cw.Grid[row][col]
			if ch >= 'A' && ch <= 'Z' && ch != cw.Solution[row][col] {
				r.add(domain.SeverityError, CategoryContent,
					"grid letter %q at r%dc%d disagrees with solution %q", ch, row, col, cw.Solution[row][col])
			}
		}
	}
}

func (p *Pipeline) crosswordConsistency(_ context.Context, puz *domain.Puzzle, r *run) {
	cw := puz.Crossword
	// Black squares must agree between grid and solution, so that every
	// shared cell reads identically under both slot interpretations.
	for row := 0; row < cw.Size; row++ {
		for col := 0; col < cw.Size; col++ {
			gridBlack := cw.Grid[row][col] == grid.BlackCell
			solBlack := cw.Solution[row][col] == grid.BlackCell
			if gridBlack != solBlack {
				r.add(domain.SeverityError, CategoryConsistency,
					"black square at r%dc%d present in only one of grid/solution", row, col)
			}
		}
	}
	if r.blocked {
		return
	}

	pattern, _ := grid.ParsePattern(cw.Grid)
	slots := grid.Slots(pattern)
	if actual := difficulty.GradeCrossword(pattern.BlackRatio(), len(slots), cw.Size); actual != puz.Difficulty {
		r.add(domain.SeverityWarning, CategoryConsistency,
			"declared difficulty %s, metrics grade %s", puz.Difficulty, actual)
	}
}

func (p *Pipeline) crosswordSolvability(_ context.Context, puz *domain.Puzzle, r *run) {
	cw := puz.Crossword
	pattern, _ := grid.ParsePattern(cw.Grid)
	// A slot with no admissible vocabulary fill makes the puzzle
	// unsolvable for a player even if the printed solution exists.
	for _, s := range grid.Slots(pattern) {
		probe := make([]byte, s.Length)
		for i, cell := range s.Cells {
			if ch := cw.Grid[cell/cw.Size][cell%cw.Size]; ch >= 'A' && ch <= 'Z' {
				probe[i] = ch
			}
		}
		if !p.lex.HasMatch(probe) {
			r.add(domain.SeverityError, CategorySolvability,
				"slot %d-%s admits no valid fill", s.Number, s.Direction)
		}
	}
}
