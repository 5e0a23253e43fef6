package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers branch on with errors.Is.
var (
	// ErrInvalidInput means the user input was empty or malformed; detected
	// before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCredentials means the API key or user-agent string is not
	// configured. The request is never sent unauthenticated.
	ErrMissingCredentials = errors.New("missing API credentials")

	// ErrNoResults means the search succeeded but yielded no usable records.
	// Distinct from a fetch failure.
	ErrNoResults = errors.New("no jobs found")

	// ErrInvalidAnalysisKind means the UI requested an analysis kind the
	// prompt builder does not know. A contract bug, not a user error.
	ErrInvalidAnalysisKind = errors.New("invalid analysis kind")
)

// UpstreamError wraps a transport or HTTP failure from the job-search API.
type UpstreamError struct {
	StatusCode int // zero when the failure happened before a response
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("job search API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("job search API unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// BackendError wraps a transport or HTTP failure from the generation backend.
// Generate resolves every failure path to this type; nothing escapes uncaught.
type BackendError struct {
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation backend returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("generation backend unreachable: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
