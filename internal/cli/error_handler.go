package cli

import (
	"fmt"
	"io"

	"task-cli/internal/errors"
	"task-cli/internal/logging"
)

// ErrorHandler renders command failures at the CLI boundary
type ErrorHandler struct {
	w io.Writer
}

// NewErrorHandler creates a new error handler writing to w
func NewErrorHandler(w io.Writer) *ErrorHandler {
	return &ErrorHandler{w: w}
}

// Report writes the one-line user message for err.
// Failures that are not the user's doing are also logged at debug level with their cause.
func (eh *ErrorHandler) Report(err error) {
	if err == nil {
		return
	}
	if errors.ShouldLogError(err) {
		logging.Debug("command failed", "code", errors.GetErrorCode(err), "error", err)
	}
	fmt.Fprintln(eh.w, errors.GetUserMessage(err))
}
