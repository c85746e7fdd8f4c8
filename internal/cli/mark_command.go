package cli

import (
	"context"
	"fmt"
	"io"

	"task-cli/internal/domain"
	"task-cli/internal/errors"
	"task-cli/internal/services"
	"task-cli/internal/validation"
)

// MarkCommand handles mark-in-progress and mark-done
type MarkCommand struct {
	service   services.TaskService
	validator *validation.TaskValidator
	out       io.Writer
	status    domain.Status
	usage     string
}

// NewMarkCommand creates a handler that moves a task to status
func NewMarkCommand(app *App, status domain.Status, usage string) *MarkCommand {
	return &MarkCommand{
		service:   app.service,
		validator: validation.NewTaskValidator(),
		out:       app.out,
		status:    status,
		usage:     usage,
	}
}

// Execute runs the mark command
func (c *MarkCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewUsageError(c.usage)
	}

	id, err := c.validator.ParseTaskID(args[0])
	if err != nil {
		return err
	}

	if _, err := c.service.SetStatus(ctx, id, c.status); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Task %d marked as %s.\n", id, c.status)
	return nil
}
