package cli

import (
	"context"
	"fmt"
	"io"

	"task-cli/internal/errors"
	"task-cli/internal/services"
	"task-cli/internal/validation"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	service   services.TaskService
	validator *validation.TaskValidator
	out       io.Writer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		service:   app.service,
		validator: validation.NewTaskValidator(),
		out:       app.out,
	}
}

// Execute runs the delete command. Arguments after the id are ignored.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewUsageError(deleteUsage)
	}

	id, err := c.validator.ParseTaskID(args[0])
	if err != nil {
		return err
	}

	if _, err := c.service.DeleteTask(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Task %d deleted successfully.\n", id)
	return nil
}
