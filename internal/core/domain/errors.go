package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings indicates the configuration payload is missing
	// required fields. Fatal before any network work happens.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInvalidShift indicates a shift with a malformed interval
	// reached the reconciler.
	ErrInvalidShift = errors.New("invalid shift interval")
)
