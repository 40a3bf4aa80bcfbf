package domain

import "fmt"

// Finding is one validation observation.
type Finding struct {
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s [%s] %s", f.Severity, f.Category, f.Message)
}

// Report is the result of one validation pass. Findings keep the order
// in which the stages produced them; a fresh Report is built per call.
type Report struct {
	Findings []Finding `json:"findings"`
	Score    int       `json:"score"`
	Passed   bool      `json:"passed"`
}

// ErrorCount returns the number of blocking findings.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity.Blocks() {
			n++
		}
	}
	return n
}

// WarningCount returns the number of non-blocking findings.
func (r *Report) WarningCount() int {
	n := 0
	for _, f := range r.Findings {
		if !f.Severity.Blocks() {
			n++
		}
	}
	return n
}
