package woordenlijst

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the slot holds no content.
var ErrNotFound = errors.New("not found")

// Validation failure reasons.
const (
	ReasonUnsupportedType = "unsupported type"
	ReasonTooLarge        = "too large"
)

// ValidationError reports a payload that violates the upload policy.
// It is always recoverable by the caller and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// BackendErrorKind classifies transport and storage failures.
type BackendErrorKind string

const (
	BackendUnreachable BackendErrorKind = "unreachable"
	BackendTimeout     BackendErrorKind = "timeout"
	BackendUnexpected  BackendErrorKind = "unexpected"
)

// BackendError wraps a storage backend failure with its kind.
// The underlying error is kept for logging but is not part of the
// caller-facing contract beyond the kind.
type BackendError struct {
	Kind BackendErrorKind
	Err  error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("backend error (%s)", e.Kind)
	}
	return fmt.Sprintf("backend error (%s): %v", e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError wraps err as a BackendError of the given kind.
func NewBackendError(kind BackendErrorKind, err error) *BackendError {
	return &BackendError{Kind: kind, Err: err}
}

// AsValidationError returns the ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsBackendError returns the BackendError in err's chain, if any.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	ok := errors.As(err, &be)
	return be, ok
}
