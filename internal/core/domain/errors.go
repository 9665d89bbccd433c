package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameter indicates a calculation input violated its contract.
	// Every *InvalidParameterError matches it with errors.Is.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedFormat indicates a profile file extension with no codec.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// InvalidParameterError reports which calculation input failed and why.
// The calculators fail closed with this error instead of clamping.
type InvalidParameterError struct {
	// Field is the name of the offending input, e.g. "total_hours".
	Field string

	// Reason describes the violated constraint.
	Reason string
}

// Error implements error.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// Is matches ErrInvalidParameter and the broader ErrInvalidInput.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter || target == ErrInvalidInput
}

// InvalidParameter builds an *InvalidParameterError.
func InvalidParameter(field, reason string) error {
	return &InvalidParameterError{Field: field, Reason: reason}
}

// InvalidField extracts the field name from an invalid parameter error.
// Returns false if err is not (and does not wrap) an *InvalidParameterError.
func InvalidField(err error) (string, bool) {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) {
		return ipe.Field, true
	}
	return "", false
}
