package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrBackendFailure is returned when a supermarket API request fails
	ErrBackendFailure = errors.New("supermarket API request failed")
)

// UpstreamError is returned when a backend responds with a non-200 status.
// The raw response body is kept verbatim for diagnostics.
type UpstreamError struct {
	Store      string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API request failed with status code %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return ErrBackendFailure
}
