// Package validator runs the staged, severity-weighted validation
// pipeline over finished puzzle records. Stages cascade: a stage runs
// only if the previous one raised no blocking finding, so a report
// explains why a record is malformed before declaring it unsolvable.
package validator

import (
	"context"
	"fmt"

	"svw.info/puzzlebook/internal/difficulty"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/grid"
	"svw.info/puzzlebook/internal/lexicon"
	"svw.info/puzzlebook/internal/solver"
)

// Finding categories, one per pipeline stage.
const (
	CategoryStructure   = "structure"
	CategoryContent     = "content"
	CategoryConsistency = "consistency"
	CategorySolvability = "solvability"
)

// Config is passed explicitly per pipeline so severity weights and
// thresholds stay reentrant and testable. Zero values select defaults.
type Config struct {
	ErrorWeight       int             // score penalty per ERROR; default 25
	WarningWeight     int             // score penalty per WARNING; default 5
	PassScore         int             // minimum passing score; default 70
	MinSlotLen        int             // crossword minimum answer length; default 3
	MinDownRatio      float64         // crossword down-clue floor; default 0.35
	MaxBlackRatio     float64         // crossword black-square cap; default 0.25
	EmptyLineSeverity domain.Severity // empty row/column signal; default WARNING
	Policy            difficulty.Policy
	Solver            solver.Options
}

// DefaultConfig returns the standard weights and thresholds.
func DefaultConfig() Config {
	return Config{
		ErrorWeight:       25,
		WarningWeight:     5,
		PassScore:         70,
		MinSlotLen:        3,
		MinDownRatio:      0.35,
		MaxBlackRatio:     0.25,
		EmptyLineSeverity: domain.SeverityWarning,
		Policy:            difficulty.DefaultPolicy(),
	}
}

func (c Config) withDefaults() Config {
	if c.ErrorWeight <= 0 {
		c.ErrorWeight = 25
	}
	if c.WarningWeight <= 0 {
		c.WarningWeight = 5
	}
	if c.PassScore <= 0 {
		c.PassScore = 70
	}
	if c.MinSlotLen <= 0 {
		c.MinSlotLen = 3
	}
	if c.MinDownRatio == 0 {
		c.MinDownRatio = 0.35
	}
	if c.MaxBlackRatio == 0 {
		c.MaxBlackRatio = 0.25
	}
	if c.EmptyLineSeverity == 0 {
		c.EmptyLineSeverity = domain.SeverityWarning
	}
	if c.Policy.Sudoku == nil {
		c.Policy = difficulty.DefaultPolicy()
	}
	return c
}

// Pipeline validates puzzle records, dispatching on the family tag.
type Pipeline struct {
	cfg  Config
	lex  *lexicon.Lexicon
	topo *grid.Topology
}

// New wires a pipeline. The lexicon backs crossword content and
// solvability checks and must be the one the builder filled against.
func New(cfg Config, lex *lexicon.Lexicon) *Pipeline {
	return &Pipeline{cfg: cfg.withDefaults(), lex: lex, topo: grid.NewSudoku()}
}

// run accumulates findings for a single validation call.
type run struct {
	findings []domain.Finding
	blocked  bool
}

func (r *run) add(sev domain.Severity, category, format string, args ...any) {
	r.findings = append(r.findings, domain.Finding{
		Severity: sev,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
	if sev.Blocks() {
		r.blocked = true
	}
}

// Validate produces a fresh report. It never mutates the record, so
// validating the same record twice yields identical content.
//
// Structure and content errors stop the cascade: solving a malformed
// record is meaningless. Consistency findings do not gate solvability,
// so a report on a broken-but-well-formed record still says whether it
// solves uniquely.
func (p *Pipeline) Validate(ctx context.Context, puz *domain.Puzzle) *domain.Report {
	r := &run{}
	switch {
	case puz == nil:
		r.add(domain.SeverityError, CategoryStructure, "record is missing")
	case puz.Family == domain.FamilySudoku:
		p.cascade(ctx, puz, r,
			p.sudokuStructure, p.sudokuContent, p.sudokuConsistency, p.sudokuSolvability)
	case puz.Family == domain.FamilyCrossword:
		p.cascade(ctx, puz, r,
			p.crosswordStructure, p.crosswordContent, p.crosswordConsistency, p.crosswordSolvability)
	default:
		r.add(domain.SeverityError, CategoryStructure, "unknown puzzle family %d", int(puz.Family))
	}
	return p.report(r)
}

type stage func(context.Context, *domain.Puzzle, *run)

func (p *Pipeline) cascade(ctx context.Context, puz *domain.Puzzle, r *run, structure, content, consistency, solvability stage) {
	structure(ctx, puz, r)
	if r.blocked {
		return
	}
	content(ctx, puz, r)
	if r.blocked {
		return
	}
	consistency(ctx, puz, r)
	solvability(ctx, puz, r)
}

// report scores the findings: fixed penalties per severity off a
// baseline of 100. Passing requires the minimum score and zero blocking
// findings, so a high score can never mask a fatal defect.
func (p *Pipeline) report(r *run) *domain.Report {
	score := 100
	errs := 0
	for _, f := range r.findings {
		if f.Severity.Blocks() {
			score -= p.cfg.ErrorWeight
			errs++
		} else {
			score -= p.cfg.WarningWeight
		}
	}
	if score < 0 {
		score = 0
	}
	return &domain.Report{
		Findings: r.findings,
		Score:    score,
		Passed:   errs == 0 && score >= p.cfg.PassScore,
	}
}
