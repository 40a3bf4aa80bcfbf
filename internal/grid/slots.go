package grid

import "svw.info/puzzlebook/internal/domain"

// Slot is a maximal white run of length >= 2 in one direction, with its
// standard crossword number. Runs of a single cell are not slots; the
// crossing direction owns those cells.
type Slot struct {
	Number    int
	Row, Col  int
	Direction domain.Direction
	Length    int
	Cells     []int
}

// Word reads the slot's letters out of solution rows.
func (s *Slot) Word(rows []string) string {
	buf := make([]byte, s.Length)
	size := len(rows)
	for i, cell := range s.Cells {
		buf[i] = rows[cell/size][cell%size]
	}
	return string(buf)
}

// Slots derives across and down slots from contiguous white runs, in
// standard numbering order: cells are scanned row-major and a cell earns
// the next number when it starts an across or a down slot.
func Slots(p *Pattern) []Slot {
	size := p.Size
	startsRun := func(r, c int, d domain.Direction) (int, bool) {
		if p.At(r, c) {
			return 0, false
		}
		if d == domain.Across {
			if c > 0 && !p.At(r, c-1) {
				return 0, false
			}
			n := 0
			for cc := c; cc < size && !p.At(r, cc); cc++ {
				n++
			}
			return n, n >= 2
		}
		if r > 0 && !p.At(r-1, c) {
			return 0, false
		}
		n := 0
		for rr := r; rr < size && !p.At(rr, c); rr++ {
			n++
		}
		return n, n >= 2
	}

	var slots []Slot
	num := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			aLen, aOK := startsRun(r, c, domain.Across)
			dLen, dOK := startsRun(r, c, domain.Down)
			if !aOK && !dOK {
				continue
			}
			num++
			if aOK {
				cells := make([]int, aLen)
				for i := range cells {
					cells[i] = r*size + c + i
				}
				slots = append(slots, Slot{Number: num, Row: r, Col: c, Direction: domain.Across, Length: aLen, Cells: cells})
			}
			if dOK {
				cells := make([]int, dLen)
				for i := range cells {
					cells[i] = (r+i)*size + c
				}
				slots = append(slots, Slot{Number: num, Row: r, Col: c, Direction: domain.Down, Length: dLen, Cells: cells})
			}
		}
	}
	return slots
}

// DownRatio returns the fraction of slots running down.
func DownRatio(slots []Slot) float64 {
	if len(slots) == 0 {
		return 0
	}
	down := 0
	for _, s := range slots {
		if s.Direction == domain.Down {
			down++
		}
	}
	return float64(down) / float64(len(slots))
}

// Clues converts slots to interchange clue metadata, preserving order.
func Clues(slots []Slot) []domain.Clue {
	clues := make([]domain.Clue, len(slots))
	for i, s := range slots {
		clues[i] = domain.Clue{
			Number:    s.Number,
			Row:       s.Row,
			Col:       s.Col,
			Direction: s.Direction,
			Length:    s.Length,
		}
	}
	return clues
}
