// Package solver decides solvability and counts solutions, up to a
// cutoff of two, for partially filled numeric constraint grids.
package solver

import (
	"context"
	"math/bits"
	"math/rand"
	"time"

	"svw.info/puzzlebook/internal/grid"
)

// Outcome classifies a search result. Indeterminate means a budget was
// exhausted before the count settled; it is never treated as valid.
type Outcome int

const (
	NoSolution Outcome = iota
	Unique
	Multiple
	Indeterminate
)

func (o Outcome) String() string {
	switch o {
	case NoSolution:
		return "no solution"
	case Unique:
		return "unique"
	case Multiple:
		return "multiple"
	default:
		return "indeterminate"
	}
}

// Options bound the search. Zero values select defaults.
type Options struct {
	MaxNodes int           // node budget; default 200000
	Timeout  time.Duration // wall-clock budget; default 2s
	Rand     *rand.Rand    // non-nil randomizes value order
}

const (
	defaultMaxNodes = 200_000
	defaultTimeout  = 2 * time.Second
)

// Result reports the outcome of one search. The count is capped at 2;
// Solution holds the first complete assignment found, if any.
type Result struct {
	Outcome  Outcome
	Solution []uint8
	Count    int
	Nodes    int
	Duration time.Duration
}

// frame is one decision point: the branch cell, its untried candidate
// mask, and the trail of cells assigned since the branch (the branch
// cell itself plus propagation), recorded for undo.
type frame struct {
	cell  int
	cands uint16
	trail []int
}

type search struct {
	topo *grid.Topology
	work []uint8
	used []uint16 // per group, bitmask of placed values
	full uint16
	rng  *rand.Rand

	nodes    int
	maxNodes int
	deadline time.Time
}

// Count searches the grid for solutions, halting as soon as a second one
// is found. It operates on a private copy and never mutates values.
// Values use 0 for blank and 1..N otherwise; an out-of-range or
// duplicated given yields NoSolution rather than an error.
func Count(ctx context.Context, values []uint8, topo *grid.Topology, opts Options) Result {
	start := time.Now()
	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = defaultMaxNodes
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	s := &search{
		topo:     topo,
		work:     append([]uint8(nil), values...),
		used:     make([]uint16, len(topo.Groups)),
		full:     uint16(1<<topo.N) - 1,
		rng:      opts.Rand,
		maxNodes: maxNodes,
		deadline: start.Add(timeout),
	}

	res := Result{}
	if len(values) != topo.Cells() || !s.seed() {
		res.Duration = time.Since(start)
		return res // NoSolution
	}

	// Root-level propagation; its assignments are permanent.
	var rootTrail []int
	if !s.propagate(&rootTrail) {
		res.Duration = time.Since(start)
		return res
	}

	var stack []frame
	var solution []uint8
	count := 0
	descend := true

	finish := func(o Outcome) Result {
		res.Outcome = o
		res.Solution = solution
		res.Count = count
		res.Nodes = s.nodes
		res.Duration = time.Since(start)
		return res
	}

	for {
		if s.nodes >= s.maxNodes || ctx.Err() != nil || time.Now().After(s.deadline) {
			return finish(Indeterminate)
		}

		if descend {
			cell, cands := s.mostConstrained()
			if cell < 0 {
				count++
				if count == 1 {
					solution = append([]uint8(nil), s.work...)
				}
				if count >= 2 {
					return finish(Multiple)
				}
				// Keep searching for a second solution.
			} else if cands != 0 {
				stack = append(stack, frame{cell: cell, cands: cands})
			}
			// cands == 0: dead end, fall through to backtrack.
		}

		descend = false
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			s.unwind(f)
			if f.cands == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			v := s.pick(&f.cands)
			s.nodes++
			s.place(f.cell, v)
			f.trail = append(f.trail, f.cell)
			if s.propagate(&f.trail) {
				descend = true
				break
			}
		}
		if !descend {
			if count == 1 {
				return finish(Unique)
			}
			return finish(NoSolution)
		}
	}
}

// seed loads the givens into the group masks, rejecting out-of-range
// values and in-group duplicates.
func (s *search) seed() bool {
	for cell, v := range s.work {
		if v == 0 {
			continue
		}
		if int(v) > s.topo.N {
			return false
		}
		bit := uint16(1) << (v - 1)
		for _, gi := range s.topo.GroupsOf(cell) {
			if s.used[gi]&bit != 0 {
				return false
			}
			s.used[gi] |= bit
		}
	}
	return true
}

func (s *search) candidates(cell int) uint16 {
	m := s.full
	for _, gi := range s.topo.GroupsOf(cell) {
		m &^= s.used[gi]
	}
	return m
}

func (s *search) place(cell int, v uint8) {
	s.work[cell] = v
	bit := uint16(1) << (v - 1)
	for _, gi := range s.topo.GroupsOf(cell) {
		s.used[gi] |= bit
	}
}

func (s *search) clear(cell int) {
	bit := uint16(1) << (s.work[cell] - 1)
	for _, gi := range s.topo.GroupsOf(cell) {
		s.used[gi] &^= bit
	}
	s.work[cell] = 0
}

// unwind reverts every assignment recorded in the frame's trail.
func (s *search) unwind(f *frame) {
	for i := len(f.trail) - 1; i >= 0; i-- {
		s.clear(f.trail[i])
	}
	f.trail = f.trail[:0]
}

// propagate assigns naked singles to a fixpoint, recording assignments
// in trail. It returns false on a contradiction (an empty cell with no
// remaining candidate); the trail still holds what must be undone.
func (s *search) propagate(trail *[]int) bool {
	for changed := true; changed; {
		changed = false
		for cell, v := range s.work {
			if v != 0 {
				continue
			}
			m := s.candidates(cell)
			if m == 0 {
				return false
			}
			if m&(m-1) == 0 {
				s.place(cell, uint8(bits.TrailingZeros16(m)+1))
				*trail = append(*trail, cell)
				changed = true
			}
		}
	}
	return true
}

// mostConstrained returns the empty cell with the fewest candidates, or
// (-1, 0) when the grid is complete.
func (s *search) mostConstrained() (int, uint16) {
	best := -1
	var bestMask uint16
	bestCount := s.topo.N + 1
	for cell, v := range s.work {
		if v != 0 {
			continue
		}
		m := s.candidates(cell)
		n := bits.OnesCount16(m)
		if n < bestCount {
			best, bestMask, bestCount = cell, m, n
			if n <= 1 {
				break
			}
		}
	}
	return best, bestMask
}

// pick removes and returns one candidate from the mask: the lowest bit,
// or a uniformly random one when the search is randomized.
func (s *search) pick(mask *uint16) uint8 {
	m := *mask
	if s.rng != nil {
		n := bits.OnesCount16(m)
		for skip := s.rng.Intn(n); skip > 0; skip-- {
			m &= m - 1
		}
	}
	v := uint8(bits.TrailingZeros16(m) + 1)
	*mask &^= 1 << (v - 1)
	return v
}
