package harness

import "github.com/nirmalmahen-ideas2it/refactoring-kata/internal/simulation"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every checkpoint and assertion held.
	Pass bool `json:"pass"`

	// Trace holds one snapshot per simulated day, day 0 first.
	Trace *simulation.Trace `json:"trace"`

	// Errors lists every failed checkpoint or assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
