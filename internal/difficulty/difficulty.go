// Package difficulty maps structural puzzle metrics to difficulty
// labels. Classification is pure: no side effects, shared by the
// generator (to target a clue range) and the validator (to check a
// declared label against actual metrics).
package difficulty

import (
	"math/bits"

	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
)

// Range is an inclusive clue-count interval.
type Range struct {
	Lo, Hi int
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool { return n >= r.Lo && n <= r.Hi }

// Policy holds the tunable clue-count targets per difficulty. The
// ranges are editorial defaults; only the 17-clue floor is invariant.
type Policy struct {
	Sudoku map[domain.Difficulty]Range
}

// DefaultPolicy returns the standard clue targets.
func DefaultPolicy() Policy {
	return Policy{Sudoku: map[domain.Difficulty]Range{
		domain.Easy:   {36, 45},
		domain.Medium: {28, 35},
		domain.Hard:   {20, 27},
		domain.Expert: {domain.MinClues, 24},
	}}
}

// ClueRange returns the target clue range for a difficulty, clamped to
// the 17-clue floor.
func (p Policy) ClueRange(d domain.Difficulty) Range {
	r, ok := p.Sudoku[d]
	if !ok {
		r = Range{28, 35}
	}
	if r.Lo < domain.MinClues {
		r.Lo = domain.MinClues
	}
	return r
}

// GradeSudoku classifies a puzzle from its clue count and a technique
// probe. A puzzle that falls to naked singles alone never grades above
// medium regardless of how few clues it carries.
func (p Policy) GradeSudoku(clues int, singlesOnly bool) domain.Difficulty {
	grade := domain.Expert
	switch {
	case clues >= p.ClueRange(domain.Easy).Lo:
		grade = domain.Easy
	case clues >= p.ClueRange(domain.Medium).Lo:
		grade = domain.Medium
	case clues >= p.ClueRange(domain.Hard).Lo:
		grade = domain.Hard
	}
	if singlesOnly && grade > domain.Medium {
		grade = domain.Medium
	}
	return grade
}

// GradeCrossword classifies a crossword from its black-square ratio and
// slot count: denser, shorter-slotted grids read easier.
func GradeCrossword(blackRatio float64, slotCount, size int) domain.Difficulty {
	if size <= 0 || slotCount == 0 {
		return domain.Medium
	}
	// Average answer length approximates solving effort.
	white := float64(size*size) * (1 - blackRatio)
	avgLen := 2 * white / float64(slotCount)
	switch {
	case avgLen < 4:
		return domain.Easy
	case avgLen < 5.5:
		return domain.Medium
	case avgLen < 7:
		return domain.Hard
	default:
		return domain.Expert
	}
}

// SinglesSolvable reports whether the grid falls to repeated sole-
// candidate placement with no search at all.
func SinglesSolvable(values []uint8, topo *grid.Topology) bool {
	work := append([]uint8(nil), values...)
	full := uint16(1<<topo.N) - 1
	used := make([]uint16, len(topo.Groups))
	for cell, v := range work {
		if v == 0 {
			continue
		}
		for _, gi := range topo.GroupsOf(cell) {
			used[gi] |= 1 << (v - 1)
		}
	}
	empty := 0
	for _, v := range work {
		if v == 0 {
			empty++
		}
	}
	for empty > 0 {
		progressed := false
		for cell, v := range work {
			if v != 0 {
				continue
			}
			m := full
			for _, gi := range topo.GroupsOf(cell) {
				m &^= used[gi]
			}
			if m != 0 && m&(m-1) == 0 {
				work[cell] = uint8(bits.TrailingZeros16(m) + 1)
				for _, gi := range topo.GroupsOf(cell) {
					used[gi] |= m
				}
				empty--
				progressed = true
			}
		}
		if !progressed {
			return false
		}
	}
	return true
}
