package ports

import (
	"context"
	"time"

	"yt2reader/internal/domain"
)

// SaveResult is the classified outcome of one save attempt that reached
// the remote endpoint. Transport-level faults are returned as errors by
// Save instead.
type SaveResult struct {
	StatusCode int
	Body       string        // response body, captured verbatim for error reporting
	RetryAfter time.Duration // only set for 429 responses
}

// OK reports whether the attempt got a 2xx response.
func (r *SaveResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RateLimited reports whether the endpoint asked us to back off.
func (r *SaveResult) RateLimited() bool {
	return r.StatusCode == 429
}

// Saver submits one item to the remote save endpoint.
type Saver interface {
	// Save issues a single save call. A non-nil error means the request
	// never produced an HTTP response (network fault, bad URL).
	Save(ctx context.Context, req domain.SubmissionRequest, token string) (*SaveResult, error)
}
