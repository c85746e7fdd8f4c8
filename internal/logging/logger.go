package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "TASK_CLI_DEBUG"

var (
	mu     sync.RWMutex
	logger = slog.New(slog.DiscardHandler)
)

// DebugEnabled returns true if debug mode is enabled via TASK_CLI_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// Configure installs a text logger writing to w when verbose is true or TASK_CLI_DEBUG is set.
// Otherwise every record is discarded, so command output stays limited to its messages.
func Configure(w io.Writer, verbose bool) {
	l := slog.New(slog.DiscardHandler)
	if verbose || DebugEnabled() {
		l = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a structured debug record.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Error logs a structured error record.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
