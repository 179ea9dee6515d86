// Package fault defines the error kinds shared by every domain package.
//
// Domain errors are matched by kind with errors.Is, never by message:
//
//	if errors.Is(err, fault.ErrStateConflict) { ... }
//
// Errors that match none of the kinds are treated as internal failures.
package fault

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrValidation marks malformed or missing input, reported before any mutation.
	ErrValidation = errors.New("validation failed")
	// ErrStateConflict marks an illegal transition or an edit of a non-pending order.
	ErrStateConflict = errors.New("state conflict")
	// ErrNotFound marks an unknown or cross-store reference.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientBalance marks a stock or points request exceeding what is available.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Error is a domain error carrying one of the kinds above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Validation returns an ErrValidation error with a formatted message.
func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// Conflict returns an ErrStateConflict error with a formatted message.
func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrStateConflict, Msg: fmt.Sprintf(format, args...)}
}

// NotFound returns an ErrNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Insufficient returns an ErrInsufficientBalance error with a formatted message.
func Insufficient(format string, args ...any) error {
	return &Error{Kind: ErrInsufficientBalance, Msg: fmt.Sprintf(format, args...)}
}

// IsDomain reports whether err carries any of the domain kinds.
func IsDomain(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrStateConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInsufficientBalance)
}
