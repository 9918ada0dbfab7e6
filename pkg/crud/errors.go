package crud

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that are missing or empty.
type ValidationError struct {
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func newMissingFields(fields []string) *ValidationError {
	return &ValidationError{Missing: fields}
}

func newEmptyField(field string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("field %s cannot be empty", field)}
}

// ConstraintError wraps a uniqueness violation surfaced by the store.
type ConstraintError struct {
	Original string
}

func (e *ConstraintError) Error() string {
	return "unique constraint violation"
}

// NotFoundError signals that an id has no matching record.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// InvalidFieldError signals a field name absent from the entity descriptor.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// isUniqueConstraintError detects duplicate-key failures from the driver error
// text, which is the only portable signal gorm exposes.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
