package crossword

import (
	"context"
	"math/rand"

	"svw.info/puzzlebook/internal/grid"
)

// fillFrame is one decision point in the slot search: the slot chosen,
// the candidate words not yet tried, and the cells this placement
// actually wrote (crossing letters already present are not recorded,
// so undo never erases another slot's work).
type fillFrame struct {
	slot   int
	cands  []string
	word   string
	placed []int
}

// fill assigns a lexicon word to every slot, propagating crossing
// letters and backtracking from any slot left without candidates.
// Returns the letter grid (indexed cell -> byte) and whether it filled.
func (b *Builder) fill(ctx context.Context, p *grid.Pattern, slots []grid.Slot, rng *rand.Rand) ([]byte, bool) {
	letters := make([]byte, p.Size*p.Size)
	done := make([]bool, len(slots))
	used := make(map[string]bool, len(slots))
	var stack []fillFrame
	nodes := 0
	descend := true

	unwind := func(f *fillFrame) {
		for _, cell := range f.placed {
			letters[cell] = 0
		}
		f.placed = f.placed[:0]
		if f.word != "" {
			delete(used, f.word)
			f.word = ""
		}
		done[f.slot] = false
	}

	for {
		if nodes >= b.opts.MaxFillNodes || ctx.Err() != nil {
			for i := range stack {
				unwind(&stack[i])
			}
			return nil, false
		}

		if descend {
			si, cands := b.nextSlot(slots, done, letters, used, p.Size)
			if si < 0 {
				return letters, true
			}
			shuffleWeighted(cands, rng)
			stack = append(stack, fillFrame{slot: si, cands: cands})
		}

		descend = false
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			unwind(f)
			if len(f.cands) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			word := f.cands[0]
			f.cands = f.cands[1:]
			nodes++
			f.word = word
			used[word] = true
			done[f.slot] = true
			for i, cell := range slots[f.slot].Cells {
				if letters[cell] == 0 {
					letters[cell] = word[i]
					f.placed = append(f.placed, cell)
				}
			}
			descend = true
			break
		}
		if !descend {
			return nil, false
		}
	}
}

// nextSlot picks the unfilled slot with the fewest remaining candidate
// words, or (-1, nil) when every slot is done. A zero-candidate slot is
// returned immediately so the caller backtracks without useless work.
func (b *Builder) nextSlot(slots []grid.Slot, done []bool, letters []byte, used map[string]bool, size int) (int, []string) {
	best := -1
	var bestCands []string
	for si := range slots {
		if done[si] {
			continue
		}
		cands := b.candidates(&slots[si], letters, used)
		if len(cands) == 0 {
			return si, nil
		}
		if best < 0 || len(cands) < len(bestCands) {
			best, bestCands = si, cands
		}
	}
	return best, bestCands
}

// candidates lists lexicon entries fitting the slot's fixed crossing
// letters, excluding answers already placed elsewhere in the grid.
func (b *Builder) candidates(s *grid.Slot, letters []byte, used map[string]bool) []string {
	pattern := make([]byte, s.Length)
	for i, cell := range s.Cells {
		pattern[i] = letters[cell]
	}
	matches := b.lex.Matches(pattern)
	if len(used) == 0 {
		return matches
	}
	out := matches[:0:0]
	for _, w := range matches {
		if !used[w] {
			out = append(out, w)
		}
	}
	return out
}

// shuffleWeighted perturbs candidate order while keeping the frequency
// preference loose: each word may move at most a few places.
func shuffleWeighted(words []string, rng *rand.Rand) {
	const window = 4
	for i := range words {
		hi := i + window
		if hi >= len(words) {
			hi = len(words) - 1
		}
		j := i + rng.Intn(hi-i+1)
		words[i], words[j] = words[j], words[i]
	}
}
