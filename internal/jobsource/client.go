// Package jobsource fetches the scheduled job list from the booking
// backend's HTTP API.
package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sudsywork/sudsy/internal/common"
	"github.com/sudsywork/sudsy/internal/model"
	"github.com/sudsywork/sudsy/internal/service"
)

var _ service.JobSource = (*Client)(nil)

// Client fetches jobs from GET <base>/api/jobs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retryOpts  service.RetryOptions
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryOptions overrides the retry behavior for transient failures.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(c *Client) {
		c.retryOpts = opts
	}
}

// NewClient creates a job source client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		retryOpts: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// eventsEnvelope is the wire shape of the jobs feed. A missing or
// malformed events field decodes to nil and degrades to an empty list.
type eventsEnvelope struct {
	Events []model.Job `json:"events"`
}

// FetchJobs retrieves the scheduled job list, retrying transient failures
// with exponential backoff. An empty or absent events array yields an
// empty slice, not an error.
func (c *Client) FetchJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job

	err := common.WithRetry(ctx, func() error {
		fetched, err := c.fetchOnce(ctx)
		if err != nil {
			return err
		}
		jobs = fetched
		return nil
	}, c.retryOpts)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	return jobs, nil
}

func (c *Client) fetchOnce(ctx context.Context) ([]model.Job, error) {
	url := c.baseURL + "/api/jobs"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &common.RetryableError{Err: err, Retryable: false}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors are worth retrying
		return nil, &common.RetryableError{Err: err, Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: unexpected status %d", common.ErrSourceUnavailable, resp.StatusCode),
			Retryable: retryable,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.RetryableError{Err: fmt.Errorf("failed to read response body: %w", err), Retryable: true}
	}

	var envelope eventsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		// A malformed body is a data problem, not a transient one. The
		// viewer degrades to an empty job set rather than erroring out.
		slog.Warn("Malformed jobs response, treating as empty", "error", err)
		return []model.Job{}, nil
	}

	if envelope.Events == nil {
		return []model.Job{}, nil
	}

	return envelope.Events, nil
}

// FetchOrEmpty fetches jobs for display-only views. Failures are logged
// for the operator and degrade to an empty job set; the crew just sees
// "no jobs found".
func (c *Client) FetchOrEmpty(ctx context.Context) []model.Job {
	jobs, err := c.FetchJobs(ctx)
	if err != nil {
		common.LogError(err, "Job fetch failed, showing empty schedule", common.Fields{
			"base_url": c.baseURL,
		})
		return []model.Job{}
	}
	return jobs
}
