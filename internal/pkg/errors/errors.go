package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is a generic sentinel for identity mismatches on scoped resources.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is a generic sentinel for duplicate resources.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
