package grid

import (
	"fmt"
	"strings"
)

// BlackCell marks a black square in pattern and solution rows.
const BlackCell = '#'

// OpenCell marks an unfilled white square in playable grid rows.
const OpenCell = '.'

// Pattern is a crossword black/white mask. Black cells are true.
type Pattern struct {
	Size  int
	Black []bool
}

// NewPattern returns an all-white pattern of the given size.
func NewPattern(size int) *Pattern {
	return &Pattern{Size: size, Black: make([]bool, size*size)}
}

// ParsePattern reads a pattern from grid rows, treating any non-black
// character as white.
func ParsePattern(rows []string) (*Pattern, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("pattern has no rows")
	}
	p := NewPattern(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has length %d, want %d", r, len(row), size)
		}
		for c := 0; c < size; c++ {
			if row[c] == BlackCell {
				p.Black[r*size+c] = true
			}
		}
	}
	return p, nil
}

// At reports whether the cell at (r, c) is black.
func (p *Pattern) At(r, c int) bool { return p.Black[r*p.Size+c] }

// Set marks the cell at (r, c) black or white.
func (p *Pattern) Set(r, c int, black bool) { p.Black[r*p.Size+c] = black }

// BlackRatio returns the fraction of black cells.
func (p *Pattern) BlackRatio() float64 {
	n := 0
	for _, b := range p.Black {
		if b {
			n++
		}
	}
	return float64(n) / float64(len(p.Black))
}

// Symmetric reports whether the pattern has 180-degree rotational symmetry.
func (p *Pattern) Symmetric() bool {
	last := len(p.Black) - 1
	for i, b := range p.Black {
		if b != p.Black[last-i] {
			return false
		}
	}
	return true
}

// Rows renders the pattern as playable grid rows ('#' black, '.' open).
func (p *Pattern) Rows() []string {
	rows := make([]string, p.Size)
	for r := 0; r < p.Size; r++ {
		var sb strings.Builder
		for c := 0; c < p.Size; c++ {
			if p.At(r, c) {
				sb.WriteByte(BlackCell)
			} else {
				sb.WriteByte(OpenCell)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// MinRunLength returns the length of the shortest white run in any row
// or column, or 0 if the pattern has no white cells.
func (p *Pattern) MinRunLength() int {
	min := 0
	note := func(n int) {
		if n > 0 && (min == 0 || n < min) {
			min = n
		}
	}
	for r := 0; r < p.Size; r++ {
		run := 0
		for c := 0; c < p.Size; c++ {
			if p.At(r, c) {
				note(run)
				run = 0
			} else {
				run++
			}
		}
		note(run)
	}
	for c := 0; c < p.Size; c++ {
		run := 0
		for r := 0; r < p.Size; r++ {
			if p.At(r, c) {
				note(run)
				run = 0
			} else {
				run++
			}
		}
		note(run)
	}
	return min
}
