package domain

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the core wraps exactly one of these,
// so callers can branch with errors.Is without knowing the specific cause.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("record store failure")
	ErrConflict   = errors.New("version conflict")
	ErrForbidden  = errors.New("forbidden")
)

// StoreFailure wraps an I/O error coming from a record store adapter.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func notFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}
