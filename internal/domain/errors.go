package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight search core.
var (
	// ErrInvalidRequest indicates malformed search parameters.
	// It is surfaced to the caller before any remote work starts.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSourceTimeout indicates a flight data source query timed out.
	ErrSourceTimeout = errors.New("flight source timeout")

	// ErrSourceUnavailable indicates the flight data source rejected or
	// failed the query at the transport level.
	ErrSourceUnavailable = errors.New("flight source unavailable")
)

// SourceError wraps an error from the flight data source with the source
// name and retryability. A SourceError never crosses the per-combination
// boundary in the orchestrator; it is logged and dropped there.
type SourceError struct {
	// Source is the name of the data source that failed
	Source string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the transport layer may retry the query
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a retryable SourceError.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a retryable source error.
func IsRetryable(err error) bool {
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr.Retryable
	}
	return false
}
