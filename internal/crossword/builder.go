// Package crossword builds word-placement puzzles: a black/white
// pattern satisfying layout constraints, filled from an injected
// lexicon so that every across and down slot spells a vocabulary entry.
package crossword

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/puzzlebook/internal/difficulty"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
	"svw.info/puzzlebook/internal/lexicon"
)

// ErrGenerationExhausted reports that no fillable grid emerged within
// the attempt budget.
var ErrGenerationExhausted = errors.New("generation budget exhausted")

// Options tune pattern shape and fill effort. Zero values select
// defaults.
type Options struct {
	Size          int     // board side; default 15
	MaxBlackRatio float64 // black-square cap; default 0.25
	MinSlotLen    int     // shortest legal answer; default 3
	MinDownRatio  float64 // down-clue floor; default 0.35
	Asymmetric    bool    // drop the 180-degree symmetry requirement
	MaxAttempts   int     // pattern+fill attempts; default 30
	MaxFillNodes  int     // word placements tried per fill; default 100000
	Pattern       []string // fixed pattern rows; skips pattern generation
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 15
	}
	if o.MaxBlackRatio == 0 {
		o.MaxBlackRatio = 0.25
	}
	if o.MinSlotLen <= 0 {
		o.MinSlotLen = 3
	}
	if o.MinDownRatio == 0 {
		o.MinDownRatio = 0.35
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 30
	}
	if o.MaxFillNodes <= 0 {
		o.MaxFillNodes = 100_000
	}
	return o
}

// Builder fills crossword grids against a read-only lexicon. The same
// lexicon instance must back the validator so that generated puzzles
// validate by construction.
type Builder struct {
	lex  *lexicon.Lexicon
	opts Options
}

// NewBuilder wires a builder over the given lexicon.
func NewBuilder(lex *lexicon.Lexicon, opts Options) *Builder {
	return &Builder{lex: lex, opts: opts.withDefaults()}
}

// Build produces a crossword puzzle record, retrying fresh patterns
// until one fills or the attempt budget runs out.
func (b *Builder) Build(ctx context.Context, seed int64) (*domain.Puzzle, error) {
	rng := rand.New(rand.NewSource(seed))
	for attempt := 0; attempt < b.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pattern, err := b.pattern(rng)
		if err != nil {
			return nil, err
		}
		slots := grid.Slots(pattern)
		if !b.layoutOK(pattern, slots) {
			continue
		}
		letters, ok := b.fill(ctx, pattern, slots, rng)
		if !ok {
			continue
		}
		return b.record(pattern, slots, letters, seed), nil
	}
	return nil, fmt.Errorf("%w: no fillable %dx%d grid after %d attempts",
		ErrGenerationExhausted, b.opts.Size, b.opts.Size, b.opts.MaxAttempts)
}

// pattern returns the fixed pattern when one was supplied, otherwise a
// fresh random one.
func (b *Builder) pattern(rng *rand.Rand) (*grid.Pattern, error) {
	if b.opts.Pattern != nil {
		return grid.ParsePattern(b.opts.Pattern)
	}
	return b.generatePattern(rng), nil
}

// generatePattern scatters black squares at random, mirroring each
// placement when symmetry is on and rejecting any placement that leaves
// a white run shorter than the minimum slot length.
func (b *Builder) generatePattern(rng *rand.Rand) *grid.Pattern {
	size := b.opts.Size
	p := grid.NewPattern(size)
	cells := size * size
	target := int(float64(cells) * b.opts.MaxBlackRatio * 0.8)
	black := 0

	for tries := 0; tries < cells*4 && black < target; tries++ {
		r, c := rng.Intn(size), rng.Intn(size)
		mr, mc := size-1-r, size-1-c
		if p.At(r, c) || p.At(mr, mc) {
			continue
		}
		added := 1
		p.Set(r, c, true)
		if !b.opts.Asymmetric && (mr != r || mc != c) {
			p.Set(mr, mc, true)
			added = 2
		}
		if black+added > target || p.MinRunLength() < b.opts.MinSlotLen {
			p.Set(r, c, false)
			p.Set(mr, mc, false)
			continue
		}
		black += added
	}
	return p
}

// layoutOK gates a pattern before any fill work: slot lengths, the
// down-clue floor, the black-square cap, and full slot coverage of the
// white cells. Near-degenerate grids with almost no down words are
// unsolvable as crosswords, not merely ugly.
func (b *Builder) layoutOK(p *grid.Pattern, slots []grid.Slot) bool {
	if len(slots) == 0 {
		return false
	}
	covered := make([]bool, p.Size*p.Size)
	for _, s := range slots {
		if s.Length < b.opts.MinSlotLen {
			return false
		}
		for _, cell := range s.Cells {
			covered[cell] = true
		}
	}
	// A white cell outside every slot would stay unfilled; fixed
	// patterns can carry such cells even when all slot checks pass.
	for i, black := range p.Black {
		if !black && !covered[i] {
			return false
		}
	}
	if grid.DownRatio(slots) < b.opts.MinDownRatio {
		return false
	}
	return p.BlackRatio() <= b.opts.MaxBlackRatio
}

// record assembles the interchange puzzle from a filled grid.
func (b *Builder) record(p *grid.Pattern, slots []grid.Slot, letters []byte, seed int64) *domain.Puzzle {
	size := p.Size
	solution := make([]string, size)
	for r := 0; r < size; r++ {
		row := make([]byte, size)
		for c := 0; c < size; c++ {
			if p.At(r, c) {
				row[c] = grid.BlackCell
			} else {
				row[c] = letters[r*size+c]
			}
		}
		solution[r] = string(row)
	}
	return &domain.Puzzle{
		Family:     domain.FamilyCrossword,
		Difficulty: difficulty.GradeCrossword(p.BlackRatio(), len(slots), size),
		Seed:       seed,
		CreatedAt:  time.Now().UnixNano(),
		Crossword: &domain.CrosswordPayload{
			Size:     size,
			Grid:     p.Rows(),
			Solution: solution,
			Clues:    grid.Clues(slots),
		},
	}
}
