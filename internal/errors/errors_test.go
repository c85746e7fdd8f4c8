package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Task", 42)

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "Task with ID 42 not found." {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want NOT_FOUND", err.Code)
	}

	id, ok := err.GetContext("id")
	if !ok || id != int64(42) {
		t.Errorf("NewNotFoundError should set id context")
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("id", "abc", "Invalid task ID. Must be an integer.")

	if err.Type != ErrorTypeInvalidArgument {
		t.Errorf("NewInvalidArgumentError type = %v, want %v", err.Type, ErrorTypeInvalidArgument)
	}
	if err.Message != "Invalid task ID. Must be an integer." {
		t.Errorf("NewInvalidArgumentError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "abc" {
		t.Errorf("NewInvalidArgumentError should set value context")
	}
}

func TestNewUnknownCommandError(t *testing.T) {
	err := NewUnknownCommandError("frobnicate")

	if err.Type != ErrorTypeUsage {
		t.Errorf("NewUnknownCommandError type = %v, want %v", err.Type, ErrorTypeUsage)
	}
	if err.Message != "Unknown command: frobnicate" {
		t.Errorf("NewUnknownCommandError message = %v", err.Message)
	}
	if err.Code != "UNKNOWN_COMMAND" {
		t.Errorf("NewUnknownCommandError code = %v", err.Code)
	}
}

func TestNewCorruptStoreError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewCorruptStoreError("tasks.json", "invalid JSON", cause)

	if err.Type != ErrorTypeCorruptStore {
		t.Errorf("NewCorruptStoreError type = %v, want %v", err.Type, ErrorTypeCorruptStore)
	}
	if err.Message != "task file tasks.json is corrupt: invalid JSON" {
		t.Errorf("NewCorruptStoreError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewCorruptStoreError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsErrorType(t *testing.T) {
	wrapped := fmt.Errorf("while loading: %w", NewCorruptStoreError("tasks.json", "bad", nil))

	if !IsErrorType(wrapped, ErrorTypeCorruptStore) {
		t.Errorf("IsErrorType should see through wrapping")
	}
	if IsErrorType(wrapped, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Not found error",
			err:      NewNotFoundError("Task", 3),
			expected: "Task with ID 3 not found.",
		},
		{
			name:     "Invalid argument error",
			err:      NewInvalidArgumentError("id", "x", "Invalid task ID. Must be an integer."),
			expected: "Invalid task ID. Must be an integer.",
		},
		{
			name:     "Usage error",
			err:      NewUsageError("Usage: task-cli delete <task_id>"),
			expected: "Usage: task-cli delete <task_id>",
		},
		{
			name:     "Corrupt store error",
			err:      NewCorruptStoreError("tasks.json", "invalid JSON", errors.New("eof")),
			expected: "task file tasks.json is corrupt: invalid JSON (eof)",
		},
		{
			name:     "Storage error without cause",
			err:      NewStorageError("write tasks.json", nil),
			expected: "storage operation failed: write tasks.json",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewUsageError("u")) != "USAGE" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Not found error", NewNotFoundError("Task", 1), false},
		{"Invalid argument error", NewInvalidArgumentError("id", "x", "bad"), false},
		{"Usage error", NewUsageError("u"), false},
		{"Corrupt store error", NewCorruptStoreError("p", "r", nil), true},
		{"Storage error", NewStorageError("write", nil), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
