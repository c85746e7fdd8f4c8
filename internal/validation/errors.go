package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeInvalidValue ValidationErrorType = "invalid_value"
	ErrorTypeDuplicate    ValidationErrorType = "duplicate"
)

// FieldError describes one invalid field of one task record
type FieldError struct {
	Index   int // position of the record in the collection, -1 when not applicable
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	if fe.Index >= 0 {
		return fmt.Sprintf("task #%d: %s", fe.Index+1, fe.Message)
	}
	return fe.Message
}

// ValidationError collects every problem found in a task collection
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make([]FieldError, 0)}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}

	messages := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("%d problems: %s", len(ve.Errors), strings.Join(messages, "; "))
}

// HasErrors returns true if any field error was recorded
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddError records a field error
func (ve *ValidationError) AddError(index int, field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Index:   index,
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

// GetFieldErrors returns all errors for a specific field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var fieldErrors []FieldError
	for _, err := range ve.Errors {
		if err.Field == field {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
