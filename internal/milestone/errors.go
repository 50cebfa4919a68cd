package milestone

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for unparsable or out-of-range startup input.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input was rejected and why.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, value, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}
