package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maheshreddyy345/protein-structure-visualizer-sub000/iox"
)

// testClient returns a client with fast timeouts suitable for httptest.
func testClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(Config{
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(iox.CloseFunc(c))
	return c
}

func TestGet_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer ts.Close()

	body, err := testClient(t).Get(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("body = %q, want %q", body, "payload")
	}
}

func TestGet_ClassifiesStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := testClient(t).Get(context.Background(), ts.URL)
	if !errors.Is(err, ErrRateLimit) {
		t.Fatalf("expected rate_limit, got %v", err)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("expected *RequestError")
	}
	if reqErr.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want 429", reqErr.Status)
	}
	if reqErr.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", reqErr.Attempts)
	}
}

func TestGetWithRetry_RecoversAfterServerErrors(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer ts.Close()

	c := testClient(t)
	body, err := c.GetWithRetry(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if string(body) != "recovered" {
		t.Errorf("body = %q, want %q", body, "recovered")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d attempts, want 3", got)
	}

	snap := c.Metrics()
	if snap.Requests != 3 || snap.Retries != 2 || snap.Successes != 1 {
		t.Errorf("metrics = %+v, want 3 requests / 2 retries / 1 success", snap)
	}
	if snap.Failures["server"] != 2 {
		t.Errorf("server failures = %d, want 2", snap.Failures["server"])
	}
}

func TestGetWithRetry_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer ts.Close()

	_, err := testClient(t).GetWithRetry(context.Background(), ts.URL)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d attempts, want 1 (404 must not be retried)", got)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("expected *RequestError")
	}
	if reqErr.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", reqErr.Attempts)
	}
}

func TestGetWithRetry_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := testClient(t).GetWithRetry(context.Background(), ts.URL)
	if !errors.Is(err, ErrServer) {
		t.Fatalf("expected server error, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d attempts, want 3", got)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("expected *RequestError")
	}
	if reqErr.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3 (last failure carries the attempt count)", reqErr.Attempts)
	}
}

func TestGet_TimeoutIsClassifiedAndRetryable(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c, err := New(Config{Timeout: 50 * time.Millisecond, MaxAttempts: 1, BaseDelay: time.Millisecond})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer iox.DiscardClose(c)

	_, err = c.Get(context.Background(), ts.URL)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
	if !Retryable(err) {
		t.Error("timeout must be retryable")
	}
}

func TestGet_NetworkErrorIsClassified(t *testing.T) {
	// Closed server: connection refused.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := testClient(t).Get(context.Background(), url)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if !Retryable(err) {
		t.Error("network error must be retryable")
	}
}

func TestGetWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := New(Config{Timeout: time.Second, MaxAttempts: 3, BaseDelay: time.Hour})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer iox.DiscardClose(c)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = c.GetWithRetry(ctx, ts.URL)
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled in chain", err)
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("caller cancellation must not classify as a network failure")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d attempts, want 1", got)
	}
}

func TestGetWithRetry_ContextCancelledInFlight(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c, err := New(Config{Timeout: time.Minute, MaxAttempts: 3, BaseDelay: time.Millisecond})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer iox.DiscardClose(c)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = c.GetWithRetry(ctx, ts.URL)
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled in chain", err)
	}
	if Retryable(err) {
		t.Error("cancelled request must not be retryable")
	}
}
