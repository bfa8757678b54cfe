package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

// scriptedSaver returns canned results per URL, in order of calls for
// that URL, and records every request it sees.
type scriptedSaver struct {
	responses map[string][]savedResponse
	calls     []domain.SubmissionRequest
	tokens    []string
}

type savedResponse struct {
	result *ports.SaveResult
	err    error
}

func newScriptedSaver() *scriptedSaver {
	return &scriptedSaver{responses: make(map[string][]savedResponse)}
}

func (s *scriptedSaver) on(url string, result *ports.SaveResult, err error) {
	s.responses[url] = append(s.responses[url], savedResponse{result: result, err: err})
}

func (s *scriptedSaver) Save(ctx context.Context, req domain.SubmissionRequest, token string) (*ports.SaveResult, error) {
	s.calls = append(s.calls, req)
	s.tokens = append(s.tokens, token)

	queued := s.responses[req.URL]
	if len(queued) == 0 {
		return &ports.SaveResult{StatusCode: 200}, nil
	}
	next := queued[0]
	s.responses[req.URL] = queued[1:]
	return next.result, next.err
}

func (s *scriptedSaver) callsFor(url string) int {
	n := 0
	for _, c := range s.calls {
		if c.URL == url {
			n++
		}
	}
	return n
}

// fakeSleeper records requested sleeps without waiting.
type fakeSleeper struct {
	slept []time.Duration
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.slept = append(s.slept, d)
	return nil
}

func (s *fakeSleeper) total() time.Duration {
	var t time.Duration
	for _, d := range s.slept {
		t += d
	}
	return t
}

func testItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{
			Title: fmt.Sprintf("video %d", i),
			URL:   fmt.Sprintf("https://www.youtube.com/watch?v=vid%d", i),
		}
	}
	return items
}

func TestRun_AllSuccess(t *testing.T) {
	saver := newScriptedSaver()
	sleeper := &fakeSleeper{}
	svc := NewSubmitService(saver, sleeper)

	items := testItems(4)
	var events []ports.ProgressEvent

	report, err := svc.Run(context.Background(), items, "tok", domain.CollectionMeta{}, func(ev ports.ProgressEvent) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.SuccessCount != 4 || report.FailureCount != 0 || len(report.Errors) != 0 {
		t.Errorf("report = %+v", report)
	}

	// completed values must be 1..n, strictly increasing.
	if len(events) != 4 {
		t.Fatalf("expected 4 progress events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Waiting {
			t.Errorf("event %d unexpectedly waiting", i)
		}
		if ev.Completed != i+1 || ev.Total != 4 {
			t.Errorf("event %d = %d/%d, want %d/4", i, ev.Completed, ev.Total, i+1)
		}
	}

	// Courtesy throttle after every attempt.
	if len(sleeper.slept) != 4 {
		t.Fatalf("expected 4 sleeps, got %d", len(sleeper.slept))
	}
	for _, d := range sleeper.slept {
		if d != CourtesyDelay {
			t.Errorf("sleep = %v, want %v", d, CourtesyDelay)
		}
	}
}

func TestRun_RateLimitedItemRetriesAfterOthers(t *testing.T) {
	saver := newScriptedSaver()
	sleeper := &fakeSleeper{}
	svc := NewSubmitService(saver, sleeper)

	items := testItems(4)
	limited := items[1].URL
	saver.on(limited, &ports.SaveResult{StatusCode: 429, RetryAfter: 2 * time.Second}, nil)
	saver.on(limited, &ports.SaveResult{StatusCode: 200}, nil)

	var events []ports.ProgressEvent
	report, err := svc.Run(context.Background(), items, "tok", domain.CollectionMeta{}, func(ev ports.ProgressEvent) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.SuccessCount != 4 || report.FailureCount != 0 {
		t.Errorf("report = %+v", report)
	}
	if got := saver.callsFor(limited); got != 2 {
		t.Errorf("rate-limited item got %d requests, want 2", got)
	}

	// The retried item must come after every originally-queued item.
	if last := saver.calls[len(saver.calls)-1].URL; last != limited {
		t.Errorf("last request was for %s, want the retried item %s", last, limited)
	}

	// Back-off of at least the advertised 2 simulated seconds between the
	// two attempts for the limited item.
	var sawBackoff bool
	for _, d := range sleeper.slept {
		if d >= 2*time.Second {
			sawBackoff = true
		}
	}
	if !sawBackoff {
		t.Errorf("no back-off sleep >= 2s recorded: %v", sleeper.slept)
	}

	// A waiting event precedes the back-off.
	var sawWaiting bool
	for _, ev := range events {
		if ev.Waiting && ev.RetryAfter == 2*time.Second {
			sawWaiting = true
		}
	}
	if !sawWaiting {
		t.Error("no waiting progress event emitted")
	}
}

func TestRun_ServerErrorIsTerminalForItem(t *testing.T) {
	saver := newScriptedSaver()
	sleeper := &fakeSleeper{}
	svc := NewSubmitService(saver, sleeper)

	items := testItems(3)
	failing := items[1].URL
	saver.on(failing, &ports.SaveResult{StatusCode: 500, Body: `{"detail":"boom"}`}, nil)

	report, err := svc.Run(context.Background(), items, "tok", domain.CollectionMeta{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.SuccessCount != 2 || report.FailureCount != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("errors = %v", report.Errors)
	}
	want := fmt.Sprintf("Failed to save URL: %s, Status: 500, Response: %s", failing, `{"detail":"boom"}`)
	if report.Errors[0] != want {
		t.Errorf("error = %q, want %q", report.Errors[0], want)
	}
	if got := saver.callsFor(failing); got != 1 {
		t.Errorf("failed item got %d requests, want no retry", got)
	}
}

func TestRun_TransportErrorIsTerminalForItem(t *testing.T) {
	saver := newScriptedSaver()
	svc := NewSubmitService(saver, &fakeSleeper{})

	items := testItems(2)
	saver.on(items[0].URL, nil, errors.New("connection refused"))

	report, err := svc.Run(context.Background(), items, "tok", domain.CollectionMeta{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.SuccessCount != 1 || report.FailureCount != 1 {
		t.Errorf("report = %+v", report)
	}
	if !strings.Contains(report.Errors[0], items[0].URL) || !strings.Contains(report.Errors[0], "connection refused") {
		t.Errorf("error = %q", report.Errors[0])
	}
}

func TestRun_EmptyInput(t *testing.T) {
	saver := newScriptedSaver()
	svc := NewSubmitService(saver, &fakeSleeper{})

	report, err := svc.Run(context.Background(), nil, "tok", domain.CollectionMeta{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.SuccessCount != 0 || report.FailureCount != 0 || len(report.Errors) != 0 {
		t.Errorf("report = %+v", report)
	}
	if len(saver.calls) != 0 {
		t.Errorf("empty run made %d network calls", len(saver.calls))
	}
}

func TestRun_MissingToken(t *testing.T) {
	saver := newScriptedSaver()
	svc := NewSubmitService(saver, &fakeSleeper{})

	_, err := svc.Run(context.Background(), testItems(2), "  ", domain.CollectionMeta{}, nil)
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("err = %v, want ErrMissingToken", err)
	}
	if len(saver.calls) != 0 {
		t.Errorf("missing-token run made %d network calls", len(saver.calls))
	}
}

func TestRun_CancelledContextReturnsPartialReport(t *testing.T) {
	saver := newScriptedSaver()
	sleeper := &fakeSleeper{}
	svc := NewSubmitService(saver, sleeper)

	ctx, cancel := context.WithCancel(context.Background())
	items := testItems(5)

	attempts := 0
	report, err := svc.Run(ctx, items, "tok", domain.CollectionMeta{}, func(ev ports.ProgressEvent) {
		attempts++
		if attempts == 2 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	if report.SuccessCount != 2 {
		t.Errorf("partial report = %+v, want 2 successes", report)
	}
	if len(saver.calls) != 2 {
		t.Errorf("made %d calls after cancel, want 2", len(saver.calls))
	}
}

func TestRun_RequestCarriesTokenAndMeta(t *testing.T) {
	saver := newScriptedSaver()
	svc := NewSubmitService(saver, &fakeSleeper{})

	meta := domain.CollectionMeta{Title: "Mix", Author: "Chan", Location: "later"}
	if _, err := svc.Run(context.Background(), testItems(1), "secret", meta, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if saver.tokens[0] != "secret" {
		t.Errorf("token = %q", saver.tokens[0])
	}
	req := saver.calls[0]
	if req.Author != "Chan" || req.Location != "later" {
		t.Errorf("request meta = %+v", req)
	}
	if len(req.Tags) != 3 || req.Tags[2] != "name:Mix" {
		t.Errorf("request tags = %v", req.Tags)
	}
}

func TestStdSleeper_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := (StdSleeper{}).Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Sleep did not return promptly on cancellation")
	}
}
