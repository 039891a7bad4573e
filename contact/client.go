package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotConfigured is returned when no endpoint is set.
var ErrNotConfigured = errors.New("contact: form endpoint not configured")

// Outcome is the result of a dispatch. It only tells whether the request
// went out without a transport error; the server's reply is never read, so
// Dispatched does not mean the endpoint accepted the submission.
type Outcome struct {
	Dispatched bool
	Err        error
}

// Client posts submissions to a form-handling endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for cfg. A nil httpClient uses a fresh
// http.Client with cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{endpoint: cfg.Endpoint, http: httpClient}
}

// Dispatch sends s as a single form-encoded POST. The response status and
// body are never inspected; the body is only drained so the connection can
// be reused.
func (c *Client) Dispatch(ctx context.Context, s Submission) Outcome {
	if c.endpoint == "" {
		return Outcome{Err: ErrNotConfigured}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(Encode(s)))
	if err != nil {
		return Outcome{Err: fmt.Errorf("contact: build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return Outcome{Err: fmt.Errorf("contact: dispatch: %w", err)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return Outcome{Dispatched: true}
}
