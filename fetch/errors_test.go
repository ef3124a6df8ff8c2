package fetch

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{400, ErrBadRequest},
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{429, ErrRateLimit},
		{500, ErrServer},
		{502, ErrServer},
		{503, ErrServer},
		{418, ErrUnknown},
	}

	for _, tt := range tests {
		if got := classifyStatus(tt.status); !errors.Is(got, tt.want) {
			t.Errorf("classifyStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRequestError_Retryable(t *testing.T) {
	tests := []struct {
		kind      error
		retryable bool
	}{
		{ErrNetwork, true},
		{ErrTimeout, true},
		{ErrRateLimit, true},
		{ErrServer, true},
		{ErrUnknown, true},
		{ErrNotFound, false},
		{ErrBadRequest, false},
		{ErrUnauthorized, false},
		{ErrForbidden, false},
		{ErrMalformed, false},
	}

	for _, tt := range tests {
		e := &RequestError{Kind: tt.kind, URL: "http://example.test", Attempts: 1, Err: errors.New("boom")}
		if got := e.Retryable(); got != tt.retryable {
			t.Errorf("Retryable() for kind %v = %v, want %v", tt.kind, got, tt.retryable)
		}
	}
}

func TestRequestError_IsAndUnwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	e := &RequestError{Kind: ErrNetwork, URL: "http://example.test", Attempts: 2, Err: underlying}

	if !errors.Is(e, ErrNetwork) {
		t.Error("errors.Is should match the kind sentinel")
	}
	if errors.Is(e, ErrTimeout) {
		t.Error("errors.Is should not match other sentinels")
	}
	if !errors.Is(e, underlying) {
		t.Error("errors.Is should reach the underlying error via Unwrap")
	}

	wrapped := fmt.Errorf("fetch metadata: %w", e)
	var reqErr *RequestError
	if !errors.As(wrapped, &reqErr) {
		t.Fatal("errors.As should recover *RequestError from a wrapped chain")
	}
	if reqErr.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", reqErr.Attempts)
	}
}

func TestKind_Labels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNetwork, "network"},
		{ErrTimeout, "timeout"},
		{ErrRateLimit, "rate_limit"},
		{ErrNotFound, "not_found"},
		{ErrBadRequest, "bad_request"},
		{ErrUnauthorized, "unauthorized"},
		{ErrForbidden, "forbidden"},
		{ErrServer, "server"},
		{ErrMalformed, "malformed"},
		{errors.New("anything else"), "unknown"},
		{fmt.Errorf("wrapped: %w", ErrMalformed), "malformed"},
		{&RequestError{Kind: ErrRateLimit, Attempts: 1, Err: errors.New("429")}, "rate_limit"},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestGuidance_NonEmptyPerKind(t *testing.T) {
	kinds := []error{
		ErrNetwork, ErrTimeout, ErrRateLimit, ErrNotFound,
		ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrServer,
		ErrMalformed, ErrUnknown,
	}
	seen := make(map[string]bool)
	for _, kind := range kinds {
		e := &RequestError{Kind: kind, Attempts: 1, Err: errors.New("x")}
		g := e.Guidance()
		if g == "" {
			t.Errorf("empty guidance for kind %v", kind)
		}
		seen[g] = true
	}
	// network, timeout, rate_limit, and not_found at minimum must
	// carry distinct guidance.
	if len(seen) < 4 {
		t.Errorf("expected at least 4 distinct guidance texts, got %d", len(seen))
	}
}

func TestRetryable_PlainErrors(t *testing.T) {
	if Retryable(nil) {
		t.Error("nil should not be retryable")
	}
	if !Retryable(fmt.Errorf("wrapped: %w", ErrServer)) {
		t.Error("wrapped server error should be retryable")
	}
	if Retryable(fmt.Errorf("wrapped: %w", ErrMalformed)) {
		t.Error("malformed should never be retryable")
	}
}
