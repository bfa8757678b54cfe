package ports

import "time"

// ProgressEvent is an ephemeral snapshot emitted during a submission run.
// Completed counts resolved items (successes plus failures); Total is the
// queue length at the start of the run and does not grow when an item is
// requeued after a rate limit.
type ProgressEvent struct {
	Completed int
	Total     int

	// Waiting is true for the event emitted just before a rate-limit
	// back-off; RetryAfter then carries the wait duration.
	Waiting    bool
	RetryAfter time.Duration
}

// ProgressFunc consumes progress events. Implementations render them;
// the engine never writes to the terminal itself.
type ProgressFunc func(ProgressEvent)
