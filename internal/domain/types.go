package domain

// GridSize is the side length of a standard Sudoku board.
const GridSize = 9

// BoxSize is the side length of a Sudoku box.
const BoxSize = 3

// MinClues is the proven minimum clue count for a uniquely solvable
// 9x9 Sudoku. The generator never goes below it, whatever the policy asks.
const MinClues = 17

// SudokuPayload holds the clue grid and the full solution.
// Zero means blank in Givens; Solution is always fully filled.
type SudokuPayload struct {
	Givens   [GridSize][GridSize]uint8 `json:"grid"`
	Solution [GridSize][GridSize]uint8 `json:"solution"`
}

// ClueCount returns the number of given cells.
func (p *SudokuPayload) ClueCount() int {
	n := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if p.Givens[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Clue numbers and orients one crossword slot.
type Clue struct {
	Number    int       `json:"number"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
}

// CrosswordPayload holds the playable grid, the solution, and slot metadata.
// Grid rows use '#' for black squares and '.' for open cells; Solution rows
// use '#' and uppercase letters.
type CrosswordPayload struct {
	Size     int      `json:"size"`
	Grid     []string `json:"grid"`
	Solution []string `json:"solution"`
	Clues    []Clue   `json:"clues"`
}

// Puzzle is a validated record handed to publishing collaborators.
// Exactly one family payload is populated, selected by Family.
// Records are immutable once validated; a failed record is discarded
// and regenerated, never patched.
type Puzzle struct {
	ID         string            `json:"id,omitempty"`
	Family     Family            `json:"family"`
	Difficulty Difficulty        `json:"difficulty"`
	Seed       int64             `json:"seed,omitempty"`
	CreatedAt  int64             `json:"createdAt,omitempty"`
	Sudoku     *SudokuPayload    `json:"sudoku,omitempty"`
	Crossword  *CrosswordPayload `json:"crossword,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Family     Family     `json:"family"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
