package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
// It is an absent signal, not a fault: callers that require the session to
// exist must check for it themselves.
var ErrSessionNotFound = errors.New("session not found")

// ErrMissingResearch is returned by the outreach stage when its session has no
// research data. This is a precondition failure and is never retried.
var ErrMissingResearch = errors.New("no research data found for session")

// ErrInvalidInput is returned when a caller-supplied value cannot be coerced
// to the expected type. Propagated to the caller, not retried.
var ErrInvalidInput = errors.New("invalid input")

// TransientError marks a provider failure as retryable. Errors not wrapped in
// it are treated as fatal by the retry combinator.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure in %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as retryable.
func Transient(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
