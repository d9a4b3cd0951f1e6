// Package clients provides the resilient HTTP client used for outbound
// calls. Callers translate these errors into domain errors.
package clients

import "errors"

var (
	// ErrCircuitOpen means the destination is failing and calls are blocked.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last error after every attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
