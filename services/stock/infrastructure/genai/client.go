// Package genai is the HTTP client for the external text-generation
// service. One call is bounded to at most three attempts with
// exponential backoff; only transport failures and HTTP 429 are
// retried, every other non-success status is terminal.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	defaultMaxAttempts    = 3
	defaultInitialBackoff = time.Second

	// NoContentPlaceholder is returned as a soft success when the
	// response body does not carry the expected payload shape.
	NoContentPlaceholder = "no content"
)

// ErrCallInFlight is returned when Generate is invoked while another
// call on the same Client instance has not finished. Callers surface
// it as a busy/loading state, not as a failure of the running call.
var ErrCallInFlight = errors.New("genai: call already in flight")

// FailureKind distinguishes terminal failure classes after a call gives up.
type FailureKind string

const (
	// FailureRateLimited: every attempt ended in HTTP 429.
	FailureRateLimited FailureKind = "rate_limited"
	// FailureNetwork: every attempt ended in a transport error.
	FailureNetwork FailureKind = "network"
	// FailureStatus: a non-retryable HTTP status ended the call immediately.
	FailureStatus FailureKind = "status"
)

// CallError is the terminal failure of a Generate call.
type CallError struct {
	Kind     FailureKind
	Status   int // last HTTP status; 0 for pure transport failures
	Attempts int
	Message  string // human-readable message from the error payload, if any
	Err      error  // last transport error, if any
}

func (e *CallError) Error() string {
	switch e.Kind {
	case FailureRateLimited:
		return fmt.Sprintf("genai: rate limited after %d attempts", e.Attempts)
	case FailureNetwork:
		return fmt.Sprintf("genai: network failure after %d attempts: %v", e.Attempts, e.Err)
	default:
		if e.Message != "" {
			return fmt.Sprintf("genai: request failed with status %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("genai: request failed with status %d", e.Status)
	}
}

func (e *CallError) Unwrap() error { return e.Err }

// Request is one text-generation request.
type Request struct {
	// SystemInstruction primes the model's role.
	SystemInstruction string
	// Query is the user prompt.
	Query string
	// SearchGrounding enables the provider's search-grounding tool.
	SearchGrounding bool
}

// Config holds client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	MaxAttempts    int
	InitialBackoff time.Duration
	HTTPClient     *http.Client
	// Sleep is the backoff wait; injectable for tests. Defaults to a
	// context-aware time.After wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Client calls the generation endpoint with retries. At most one
// Generate call runs per Client instance at a time (single-flight).
type Client struct {
	baseURL        string
	apiKey         string
	model          string
	maxAttempts    int
	initialBackoff time.Duration
	httpClient     *http.Client
	sleep          func(ctx context.Context, d time.Duration) error
	inFlight       atomic.Bool
}

// NewClient returns a Client for cfg.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		httpClient:     cfg.HTTPClient,
		sleep:          cfg.Sleep,
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = defaultMaxAttempts
	}
	if c.initialBackoff <= 0 {
		c.initialBackoff = defaultInitialBackoff
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.sleep == nil {
		c.sleep = sleepWithContext
	}
	return c
}

// Busy reports whether a Generate call is currently running.
func (c *Client) Busy() bool {
	return c.inFlight.Load()
}

// Generate runs one request to terminal success or failure.
//
// Attempt schedule: the first attempt runs immediately; after each
// retryable failure the client waits (1s, then 2s, doubling) before the
// next attempt. Retryable failures are transport errors and HTTP 429.
// Any other non-2xx status returns a *CallError immediately without
// consuming remaining attempts.
//
// A 2xx response missing the expected payload shape is a soft success:
// Generate returns NoContentPlaceholder and a nil error.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return "", ErrCallInFlight
	}
	defer c.inFlight.Store(false)

	backoff := c.initialBackoff
	var (
		lastErr    error
		rateLimits int
	)

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		text, status, err := c.attempt(ctx, req)
		switch {
		case err == nil && status == 0:
			return text, nil
		case status == http.StatusTooManyRequests:
			rateLimits++
			lastErr = fmt.Errorf("genai: status 429 on attempt %d", attempt)
		case status != 0:
			return "", &CallError{Kind: FailureStatus, Status: status, Attempts: attempt, Message: text}
		default:
			lastErr = err
		}

		if attempt < c.maxAttempts {
			if err := c.sleep(ctx, backoff); err != nil {
				return "", &CallError{Kind: FailureNetwork, Attempts: attempt, Err: err}
			}
			backoff *= 2
		}
	}

	if rateLimits > 0 {
		return "", &CallError{Kind: FailureRateLimited, Status: http.StatusTooManyRequests, Attempts: c.maxAttempts, Err: lastErr}
	}
	return "", &CallError{Kind: FailureNetwork, Attempts: c.maxAttempts, Err: lastErr}
}

// attempt performs one HTTP round trip.
// Returns (text, 0, nil) on success, ("", status, nil) on a non-2xx
// status (text carries the error payload message for terminal
// statuses), or ("", 0, err) on a transport failure.
func (c *Client) attempt(ctx context.Context, req Request) (string, int, error) {
	body, err := json.Marshal(newGenerateRequest(req))
	if err != nil {
		return "", 0, fmt.Errorf("genai: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("genai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, fmt.Errorf("genai: do request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", 0, fmt.Errorf("genai: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorMessage(payload), resp.StatusCode, nil
	}

	return extractText(payload), 0, nil
}

// extractText pulls the first candidate's first text part out of the
// nested response shape. Any missing level yields the placeholder.
func extractText(payload []byte) string {
	var resp generateResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return NoContentPlaceholder
	}
	if len(resp.Candidates) == 0 ||
		len(resp.Candidates[0].Content.Parts) == 0 ||
		resp.Candidates[0].Content.Parts[0].Text == "" {
		return NoContentPlaceholder
	}
	return resp.Candidates[0].Content.Parts[0].Text
}

func errorMessage(payload []byte) string {
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return ""
	}
	return resp.Error.Message
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
