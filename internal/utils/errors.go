package utils

import (
	"errors"
	"fmt"
)

// Common application errors used across services.
var (
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrValidation         = errors.New("INVALID_REQUEST")
	ErrConflict           = errors.New("CONFLICT")
	ErrUnauthorized       = errors.New("UNAUTHORIZED")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrSessionNotFound    = errors.New("SESSION_NOT_FOUND")
	ErrTooManyAttempts    = errors.New("TOO_MANY_REQUESTS")
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field-level problem found in a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// ConstraintError reports a uniqueness violation on Field.
type ConstraintError struct {
	Field      string
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s already exists (%s)", e.Field, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return ErrConflict }
