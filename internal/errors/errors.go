package errors

import (
	"errors"
	"fmt"
)

// NewNotFoundError creates a new not found error for a resource with a numeric ID
func NewNotFoundError(resource string, id int64) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s with ID %d not found.", resource, id),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource": resource,
			"id":       id,
		},
	}
}

// NewInvalidArgumentError creates a new invalid argument error.
// The message is shown to the user as-is.
func NewInvalidArgumentError(field string, value interface{}, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidArgument,
		Message: message,
		Code:    "INVALID_ARGUMENT",
		Context: map[string]interface{}{
			"field": field,
			"value": value,
		},
	}
}

// NewUsageError creates a new usage error carrying the usage line of a command
func NewUsageError(usage string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: usage,
		Code:    "USAGE",
		Context: make(map[string]interface{}),
	}
}

// NewUnknownCommandError creates a usage error for an unrecognized subcommand
func NewUnknownCommandError(command string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: fmt.Sprintf("Unknown command: %s", command),
		Code:    "UNKNOWN_COMMAND",
		Context: map[string]interface{}{
			"command": command,
		},
	}
}

// NewCorruptStoreError creates a new error for a task file that exists but cannot be parsed
func NewCorruptStoreError(path string, reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptStore,
		Message: fmt.Sprintf("task file %s is corrupt: %s", path, reason),
		Code:    "CORRUPT_STORE",
		Cause:   cause,
		Context: map[string]interface{}{
			"path":   path,
			"reason": reason,
		},
	}
}

// NewStorageError creates a new error for a failed read or write of the task file
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns the one-line message shown on the terminal
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotFound, ErrorTypeInvalidArgument, ErrorTypeUsage:
			return appErr.Message
		case ErrorTypeCorruptStore, ErrorTypeStorage:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s (%v)", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotFound, ErrorTypeInvalidArgument, ErrorTypeUsage:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
