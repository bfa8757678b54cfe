package tui

import (
	"fmt"
	"sync"
	"time"

	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

// SubmitProgress renders the live state of a submission run: a progress
// line, plus a wait notice while the run is suspended by a rate limit.
// Safe for concurrent use even though runs are serialized.
type SubmitProgress struct {
	total    int
	quiet    bool
	mu       sync.Mutex
	rendered int // lines printed by the previous render
}

// NewSubmitProgress creates a progress display for a run of total items.
func NewSubmitProgress(total int, quiet bool) *SubmitProgress {
	if total < 0 {
		total = 0
	}
	return &SubmitProgress{total: total, quiet: quiet}
}

// Handle is a ports.ProgressFunc.
func (sp *SubmitProgress) Handle(ev ports.ProgressEvent) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.quiet {
		return
	}

	lines := []string{sp.progressLine(ev.Completed)}
	if ev.Waiting {
		lines = append(lines, fmt.Sprintf("Rate limited. Waiting %s...", formatWait(ev.RetryAfter)))
	}
	sp.redraw(lines)
}

// Complete clears the live display and prints the final summary with the
// error list capped for readability.
func (sp *SubmitProgress) Complete(report domain.RunReport) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.quiet {
		return
	}

	sp.redraw([]string{sp.progressLine(report.Resolved())})
	fmt.Println()

	if report.AllSucceeded() {
		fmt.Printf("Saved all %d videos to Reader\n", report.SuccessCount)
		return
	}

	fmt.Printf("Saved %d of %d videos, %d failed\n", report.SuccessCount, sp.total, report.FailureCount)
	fmt.Println("\nFailures:")
	for _, line := range report.DisplayErrors() {
		fmt.Printf("  ✗ %s\n", line)
	}
}

func (sp *SubmitProgress) progressLine(completed int) string {
	percent := 0
	if sp.total > 0 {
		percent = (completed * 100) / sp.total
	}
	return fmt.Sprintf("Saving %d/%d videos %s %d%%", completed, sp.total, renderProgressBar(completed, sp.total, 20), percent)
}

func (sp *SubmitProgress) redraw(lines []string) {
	if sp.rendered > 0 {
		fmt.Printf("\033[%dA", sp.rendered)
		fmt.Print("\033[J")
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	sp.rendered = len(lines)
}

func formatWait(d time.Duration) string {
	if d >= time.Minute {
		return d.Round(time.Second).String()
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
