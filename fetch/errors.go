// Package fetch provides a resilient HTTP GET client for the two
// upstream protein APIs.
//
// This file defines sentinel errors and the classified request error
// wrapper. Sentinels enable callers to use errors.Is/errors.As for
// typed assertions rather than string matching; the wrapper carries
// the machine-readable kind, the retryability flag, and the number of
// attempts made.
package fetch

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for request failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrNetwork indicates a connectivity/transport failure
	// (connection refused, DNS, unreachable host).
	ErrNetwork = errors.New("network error")

	// ErrTimeout indicates the request exceeded the client timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrRateLimit indicates rate limiting (HTTP 429).
	ErrRateLimit = errors.New("rate limited")

	// ErrNotFound indicates the resource does not exist (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrBadRequest indicates a malformed request (HTTP 400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized indicates missing/invalid credentials (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the server refused the request (HTTP 403).
	ErrForbidden = errors.New("forbidden")

	// ErrServer indicates a server-side failure (HTTP 5xx).
	ErrServer = errors.New("server error")

	// ErrMalformed indicates a response that could not be interpreted
	// (invalid JSON, payload failing structural validation).
	ErrMalformed = errors.New("malformed response")

	// ErrUnknown is the fallback classification.
	ErrUnknown = errors.New("unknown error")
)

// RequestError wraps an underlying error with request classification.
// It preserves the original error in the chain for inspection via
// errors.As.
type RequestError struct {
	// Kind is the sentinel error for classification (e.g. ErrTimeout).
	Kind error
	// URL is the request URL.
	URL string
	// Status is the HTTP status code, or 0 for transport failures.
	Status int
	// Attempts is the total number of attempts made, including the
	// initial one.
	Attempts int
	// Err is the underlying error.
	Err error
}

func (e *RequestError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("GET %s: %v after %d attempts: %v", e.URL, e.Kind, e.Attempts, e.Err)
	}
	return fmt.Sprintf("GET %s: %v: %v", e.URL, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *RequestError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Retryable reports whether resending the same request may succeed.
// Connectivity failures, timeouts, rate limiting, and server-side
// failures are retryable; client errors and malformed responses are
// not.
func (e *RequestError) Retryable() bool {
	switch e.Kind {
	case ErrNetwork, ErrTimeout, ErrRateLimit, ErrServer, ErrUnknown:
		return true
	default:
		return false
	}
}

// Guidance returns user-facing guidance text for the failure kind.
// Callers use this to choose display text, never to alter control flow.
func (e *RequestError) Guidance() string {
	switch e.Kind {
	case ErrNetwork:
		return "Unable to reach the server. Check your internet connection and try again."
	case ErrTimeout:
		return "The server is taking too long to respond. It may be busy; wait a moment and retry."
	case ErrRateLimit:
		return "Too many requests. Wait 30-60 seconds before trying again."
	case ErrNotFound:
		return "No record was found. Verify the identifier and try again."
	case ErrBadRequest:
		return "The request was not accepted. Verify the identifier or query."
	case ErrUnauthorized, ErrForbidden:
		return "Access to this resource was denied."
	case ErrServer:
		return "The server reported an internal problem. Try again shortly."
	case ErrMalformed:
		return "The server response could not be understood."
	default:
		return "Something went wrong. Try again."
	}
}

// Kind returns the taxonomy label for any error: "network", "timeout",
// "rate_limit", "not_found", "bad_request", "unauthorized",
// "forbidden", "server", "malformed", or "unknown". Works for bare
// sentinels, wrapped sentinels, and RequestError values alike.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrRateLimit):
		return "rate_limit"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrServer):
		return "server"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}

// Retryable reports whether err is a retryable classified failure.
// Unclassified errors are treated as retryable (unknown fallback),
// except nil.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Retryable()
	}
	switch Kind(err) {
	case "network", "timeout", "rate_limit", "server", "unknown":
		return true
	default:
		return false
	}
}

// classifyStatus maps a non-2xx HTTP status to a sentinel kind.
func classifyStatus(status int) error {
	switch {
	case status == 400:
		return ErrBadRequest
	case status == 401:
		return ErrUnauthorized
	case status == 403:
		return ErrForbidden
	case status == 404:
		return ErrNotFound
	case status == 429:
		return ErrRateLimit
	case status >= 500:
		return ErrServer
	default:
		return ErrUnknown
	}
}

// classifyTransport maps a transport-level error to a sentinel kind.
func classifyTransport(err error) error {
	// Caller cancellation stays distinguishable from connectivity
	// failures.
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	// context deadline and net timeouts both surface Timeout() == true
	// through the url.Error chain.
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return ErrNetwork
}
