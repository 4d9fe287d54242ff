// Package client provides a Go client for the Orderdesk HTTP API.
//
// Order operations run through a bounded-concurrency executor with a hard
// per-request timeout and a fixed-delay retry policy. Timeouts are never
// retried. Auxiliary operations (comments, reminders, files) are plain
// pass-through calls with no policy beyond the caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	defaultTimeout       = 10 * time.Second
	defaultMaxAttempts   = 3
	defaultRetryDelay    = 1 * time.Second
	defaultMaxConcurrent = 5
)

// ErrTimeout marks a request that exceeded the per-request timeout.
// Timed-out requests are not retried.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to an Orderdesk server.
type Client struct {
	baseURL    string
	httpClient *http.Client

	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
	sem         *semaphore.Weighted
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout for order operations.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetry sets the attempt count and the fixed delay between attempts
// for order operations. attempts includes the first try.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = attempts
		c.retryDelay = delay
	}
}

// WithMaxConcurrent bounds how many order operations may be in flight at once.
func WithMaxConcurrent(n int64) Option {
	return func(c *Client) { c.sem = semaphore.NewWeighted(n) }
}

// New creates a Client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		timeout:     defaultTimeout,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		sem:         semaphore.NewWeighted(defaultMaxConcurrent),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doQueued runs an order operation: it waits for an executor slot, then
// issues the request with timeout and retry. Server errors (5xx) and
// transport failures are retried with a fixed delay; timeouts and client
// errors (4xx) fail immediately.
func (c *Client) doQueued(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.sem.Release(1)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.doTimed(ctx, method, path, query, body, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrTimeout) || !retryable(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	// Transport-level failure (connection refused, reset, DNS).
	return true
}

// doTimed issues a single request under the per-request timeout, mapping a
// deadline hit to ErrTimeout.
func (c *Client) doTimed(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.do(reqCtx, method, path, query, body, out)
	if err != nil && isTimeout(err, reqCtx, ctx) {
		return fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
	}
	return err
}

func isTimeout(err error, reqCtx, parent context.Context) bool {
	if parent.Err() != nil {
		// The caller's own context expired, not our per-request deadline.
		return false
	}
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// do issues a single JSON request with no policy of its own.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
