package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoComponents indicates the schematic declares no linkable
	// symbols.
	ErrNoComponents = errors.New("no components found")

	// ErrAmbiguousInput indicates interactive input that cannot be
	// parsed as a command. Surfaces re-prompt on it; it never reaches
	// the resolution engine.
	ErrAmbiguousInput = errors.New("ambiguous input")

	// ErrInvalidSupplierID indicates a hand-entered part number that
	// does not look like one.
	ErrInvalidSupplierID = errors.New("invalid supplier part number")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// MissingFieldError reports a symbol that lacks an expected property.
// It is scoped to that one symbol: the run continues and the symbol
// is reported as skipped.
type MissingFieldError struct {
	// Reference is the symbol's designator.
	Reference string

	// Property is the missing property name.
	Property string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("component %s has no %q property", e.Reference, e.Property)
}

// RateLimitError reports upstream throttling. The search client never
// retries on its own; RetryAfter is the backoff the caller should
// honor before asking again.
type RateLimitError struct {
	// RetryAfter is the computed backoff before the next attempt.
	RetryAfter time.Duration

	// Failures is the consecutive-throttle count that produced this
	// backoff.
	Failures int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s (%d consecutive failures)", e.RetryAfter, e.Failures)
}

// TransportError reports a network or upstream failure that is not
// throttling. It is surfaced, never silently retried.
type TransportError struct {
	// Op names the failed operation.
	Op string

	// Err is the underlying failure.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsMissingField reports whether err is a MissingFieldError.
func IsMissingField(err error) bool {
	var mfe *MissingFieldError
	return errors.As(err, &mfe)
}

// IsRateLimited reports whether err is a RateLimitError.
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
