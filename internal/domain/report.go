package domain

import "fmt"

// MaxDisplayedErrors caps how many error lines a report surfaces to the
// user; the rest are summarized as an overflow count.
const MaxDisplayedErrors = 5

// RunReport aggregates one submission run. SuccessCount + FailureCount can
// be less than the number of attempts: rate-limited attempts are retried in
// place and counted only once they resolve.
type RunReport struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Errors       []string `json:"errors"`
}

// Resolved returns the number of items that reached a terminal state.
func (r *RunReport) Resolved() int {
	return r.SuccessCount + r.FailureCount
}

// AllSucceeded reports whether the run completed without failures.
func (r *RunReport) AllSucceeded() bool {
	return r.FailureCount == 0
}

// DisplayErrors returns at most MaxDisplayedErrors error lines, followed
// by an overflow line when more were recorded.
func (r *RunReport) DisplayErrors() []string {
	if len(r.Errors) <= MaxDisplayedErrors {
		return r.Errors
	}

	out := make([]string, 0, MaxDisplayedErrors+1)
	out = append(out, r.Errors[:MaxDisplayedErrors]...)
	out = append(out, fmt.Sprintf("...and %d more errors", len(r.Errors)-MaxDisplayedErrors))
	return out
}
