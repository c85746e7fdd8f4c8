package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"task-cli/internal/errors"
	"task-cli/internal/services"
	"task-cli/internal/validation"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	service   services.TaskService
	validator *validation.TaskValidator
	out       io.Writer
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{
		service:   app.service,
		validator: validation.NewTaskValidator(),
		out:       app.out,
	}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewUsageError(updateUsage)
	}

	id, err := c.validator.ParseTaskID(args[0])
	if err != nil {
		return err
	}

	if _, err := c.service.UpdateTask(ctx, id, strings.Join(args[1:], " ")); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Task %d updated successfully.\n", id)
	return nil
}
