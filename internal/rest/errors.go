package rest

import (
	"fmt"
	"time"
)

// NetworkError reports a transport failure: no connectivity, DNS failure,
// connection reset, or an unreadable response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that a request exceeded its fixed budget.
type TimeoutError struct {
	Budget time.Duration
	Err    error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s: %v", e.Budget, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-2xx response, or a 2xx response whose
// envelope declared failure. Message is the backend's message when one was
// decodable.
type HTTPStatusError struct {
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http status %d", e.StatusCode)
	}
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Message)
}

// ValidationError reports caller-supplied invalid input, detected before any
// network call is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}
