// ABOUTME: Validation error types raised by the business-rule layer.
// ABOUTME: Collects per-field failures into a single ValidationError.

package service

import (
	"errors"
	"fmt"
	"strings"
)

var ErrValidation = errors.New("validation error")

// FieldError describes a validation failure for a single field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned before any storage write when a note breaks a
// business rule. errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + " " + fe.Message
	}
	return fmt.Sprintf("validation: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
