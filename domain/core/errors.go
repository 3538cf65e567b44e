package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)
	ErrFieldNotFound   = fmt.Errorf("%w: field", ErrNotFound)
	ErrStateNotFound   = fmt.Errorf("%w: filter state", ErrNotFound)

	// Aggregation errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrNoComparisons    = fmt.Errorf("%w: empty comparison list", ErrInsufficientData)
	ErrZeroTotal        = fmt.Errorf("%w: zero-total partition", ErrInsufficientData)

	// Schema errors
	ErrUnknownField   = errors.New("field not declared in schema")
	ErrUnknownSection = errors.New("section not declared in schema")
)

// NewNotFoundError builds a not-found error with resource context
func NewNotFoundError(resource string, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, resource, key)
}
