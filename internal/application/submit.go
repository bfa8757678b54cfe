package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

// CourtesyDelay is the fixed pause after every save attempt, independent
// of the 429 back-off mechanism.
const CourtesyDelay = 500 * time.Millisecond

// SubmitService drives one submission run over an ordered list of items.
// Items are processed strictly one at a time; the remote API never sees
// concurrent requests from a run.
type SubmitService struct {
	saver   ports.Saver
	sleeper ports.Sleeper
	delay   time.Duration
}

// NewSubmitService creates a submission engine over the given transport
// and clock.
func NewSubmitService(saver ports.Saver, sleeper ports.Sleeper) *SubmitService {
	return &SubmitService{
		saver:   saver,
		sleeper: sleeper,
		delay:   CourtesyDelay,
	}
}

// Run submits every item and returns the aggregate report.
//
// Rate-limited items are re-enqueued at the back of the queue and retried
// after the server-supplied Retry-After wait. There is no retry cap: an
// item that keeps returning 429 is retried until it resolves or the
// context is cancelled. That unbounded behavior is deliberate; cancel the
// context to break out of a stalled run.
//
// Any other non-2xx status and any transport fault are terminal for that
// item only; the run continues. Cancellation returns the report as
// accumulated so far together with ctx.Err().
func (s *SubmitService) Run(ctx context.Context, items []domain.Item, token string, meta domain.CollectionMeta, progress ports.ProgressFunc) (domain.RunReport, error) {
	var report domain.RunReport
	report.Errors = []string{}

	if strings.TrimSpace(token) == "" {
		return report, domain.ErrMissingToken
	}
	if progress == nil {
		progress = func(ports.ProgressEvent) {}
	}

	queue := make([]domain.Item, len(items))
	copy(queue, items)
	total := len(queue)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		item := queue[0]
		queue = queue[1:]

		req := domain.NewSubmissionRequest(item, meta)
		res, err := s.saver.Save(ctx, req, token)

		switch {
		case err != nil:
			report.FailureCount++
			report.Errors = append(report.Errors, fmt.Sprintf("Error with URL %s: %v", item.URL, err))

		case res.RateLimited():
			progress(ports.ProgressEvent{
				Completed:  report.Resolved(),
				Total:      total,
				Waiting:    true,
				RetryAfter: res.RetryAfter,
			})
			if err := s.sleeper.Sleep(ctx, res.RetryAfter); err != nil {
				return report, err
			}
			queue = append(queue, item)

		case res.OK():
			report.SuccessCount++

		default:
			report.FailureCount++
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to save URL: %s, Status: %d, Response: %s", item.URL, res.StatusCode, res.Body))
		}

		progress(ports.ProgressEvent{Completed: report.Resolved(), Total: total})

		if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
			return report, err
		}
	}

	return report, nil
}

// StdSleeper waits on the wall clock.
type StdSleeper struct{}

func (StdSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
