// Package batch validates many independent puzzle records across a
// worker pool. Puzzles share no mutable state, so fan-out needs no
// ordering; the per-puzzle reports merge into a commutative summary so
// any worker count produces the same aggregate as a sequential run.
package batch

import (
	"context"
	"sync"

	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/ports"
)

// Result pairs a record with its report.
type Result struct {
	Puzzle *domain.Puzzle
	Report *domain.Report
}

// Summary aggregates reports. Merging is commutative and associative.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Errors   int
	Warnings int
}

// Add folds one report into the summary.
func (s *Summary) Add(r *domain.Report) {
	s.Total++
	if r.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
	s.Errors += r.ErrorCount()
	s.Warnings += r.WarningCount()
}

// Merge folds another summary into this one.
func (s *Summary) Merge(o Summary) {
	s.Total += o.Total
	s.Passed += o.Passed
	s.Failed += o.Failed
	s.Errors += o.Errors
	s.Warnings += o.Warnings
}

// Runner fans puzzle validation out over workers.
type Runner struct {
	Validator ports.Validator
	Workers   int // default 1
}

// Run validates every record and returns per-record results in input
// order plus the merged summary. Each puzzle carries its own solver
// budget; there is no cancellation propagation between puzzles beyond
// the shared context.
func (r *Runner) Run(ctx context.Context, puzzles []*domain.Puzzle) ([]Result, Summary) {
	workers := r.Workers
	if workers <= 1 {
		workers = 1
	}

	results := make([]Result, len(puzzles))
	jobs := make(chan int)
	summaries := make([]Summary, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range jobs {
				report := r.Validator.Validate(ctx, puzzles[i])
				results[i] = Result{Puzzle: puzzles[i], Report: report}
				summaries[w].Add(report)
			}
		}(w)
	}
	for i := range puzzles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var total Summary
	for _, s := range summaries {
		total.Merge(s)
	}
	return results, total
}
