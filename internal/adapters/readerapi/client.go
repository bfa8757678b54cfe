// Package readerapi talks to the Readwise Reader save endpoint.
package readerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"yt2reader/internal/domain"
	"yt2reader/internal/ports"
)

// DefaultBaseURL is the Reader save endpoint.
const DefaultBaseURL = "https://readwise.io/api/v3/save/"

// defaultRetryAfter is used when a 429 carries no parsable Retry-After.
const defaultRetryAfter = 60 * time.Second

// Client submits save requests over HTTP. It classifies responses but
// never retries; pacing and requeueing belong to the submission engine.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the given endpoint; an empty baseURL
// selects the production Reader API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// Save posts one submission. The response body is read in full so failed
// saves can be reported verbatim.
func (c *Client) Save(ctx context.Context, req domain.SubmissionRequest, token string) (*ports.SaveResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Token "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	result := &ports.SaveResult{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}
	if result.RateLimited() {
		result.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	}
	return result, nil
}

// parseRetryAfter reads the header as integer seconds, falling back to 60
// when absent or unparsable.
func parseRetryAfter(v string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return defaultRetryAfter
	}
	return time.Duration(n) * time.Second
}
