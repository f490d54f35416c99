package model

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField is matched by every MissingRequiredFieldError.
var ErrMissingRequiredField = errors.New("missing required field")

// MissingRequiredFieldError reports which mandatory field was absent.
// Field uses the record key name (for example "client_company").
type MissingRequiredFieldError struct {
	Field string
}

// Error implements error.
func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, e.Field)
}

// Is makes errors.Is(err, ErrMissingRequiredField) succeed.
func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
