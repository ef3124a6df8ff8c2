package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/iox"
	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/log"
)

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultMaxAttempts is the default total attempt count (initial + retries).
const DefaultMaxAttempts = 3

// DefaultBaseDelay is the default unit of the linear retry backoff.
const DefaultBaseDelay = time.Second

// Config configures a Client. The configuration is fixed per client
// instance; the client holds no other mutable state besides metrics.
type Config struct {
	// Timeout is the per-request timeout (default 30s). Any in-flight
	// request exceeding it is cancelled and classified as a timeout.
	Timeout time.Duration
	// MaxAttempts is the total attempt count for GetWithRetry
	// (default 3).
	MaxAttempts int
	// BaseDelay is the backoff unit: the wait before retry n is
	// BaseDelay * n (default 1s).
	BaseDelay time.Duration
	// UserAgent is added to each request if non-empty.
	UserAgent string
	// Logger receives attempt/retry logs; defaults to a no-op logger.
	Logger *log.Logger
}

// Client performs HTTP GETs with timeout cancellation, bounded
// retry-with-backoff, and a uniform error taxonomy. Safe for
// concurrent use.
type Client struct {
	config  Config
	http    *http.Client
	logger  *log.SugaredLogger
	metrics *Collector
}

// New creates a fetch client from the given config, applying defaults
// for unset fields.
func New(cfg Config) (*Client, error) {
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be >= 0, got %v", cfg.Timeout)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}

	return &Client{
		config:  cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger.Sugar(),
		metrics: NewCollector(),
	}, nil
}

// Metrics returns a snapshot of the client's request counters.
func (c *Client) Metrics() Snapshot {
	return c.metrics.Snapshot()
}

// Get performs a single GET attempt and returns the raw body or a
// classified *RequestError with Attempts == 1.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	c.metrics.IncRequests()
	body, err := c.do(ctx, url)
	if err != nil {
		reqErr := c.classify(url, err, 1)
		c.metrics.IncFailure(Kind(reqErr))
		return nil, reqErr
	}
	c.metrics.IncSuccesses()
	return body, nil
}

// GetWithRetry performs a GET with bounded retries. Only retryable
// failures are retried; the wait before retry n is BaseDelay * n
// (linear backoff). After MaxAttempts failed attempts the last failure
// is surfaced with the attempt count attached.
func (c *Client) GetWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr *RequestError

	for attempt := 1; attempt <= c.config.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * c.config.BaseDelay
			c.logger.Debugf("retrying GET %s in %v (attempt %d/%d)", url, delay, attempt, c.config.MaxAttempts)
			select {
			case <-ctx.Done():
				// Caller cancellation is not a transport failure;
				// surface it unclassified so errors.Is(err,
				// context.Canceled) holds.
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			c.metrics.IncRetries()
		}

		c.metrics.IncRequests()
		body, err := c.do(ctx, url)
		if err == nil {
			c.metrics.IncSuccesses()
			return body, nil
		}

		lastErr = c.classify(url, err, attempt)
		c.metrics.IncFailure(Kind(lastErr))

		if !lastErr.Retryable() {
			return nil, lastErr
		}
		c.logger.Warnf("GET %s failed (%s), attempt %d/%d: %v", url, Kind(lastErr), attempt, c.config.MaxAttempts, lastErr.Err)
	}

	return nil, lastErr
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// statusError is returned by do for non-2xx responses; classification
// into the taxonomy happens in classify.
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// do performs a single GET and returns the body on 2xx.
func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer iox.DiscardClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain body to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &statusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// classify wraps a raw attempt error into a *RequestError.
func (c *Client) classify(url string, err error, attempts int) *RequestError {
	var stErr *statusError
	if errors.As(err, &stErr) {
		return &RequestError{
			Kind:     classifyStatus(stErr.Code),
			URL:      url,
			Status:   stErr.Code,
			Attempts: attempts,
			Err:      stErr,
		}
	}

	return &RequestError{
		Kind:     classifyTransport(err),
		URL:      url,
		Attempts: attempts,
		Err:      err,
	}
}
