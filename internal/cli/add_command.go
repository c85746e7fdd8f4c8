package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"task-cli/internal/errors"
	"task-cli/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{service: app.service, out: app.out}
}

// Execute runs the add command. Separate words are joined into one description.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewUsageError(addUsage)
	}

	task, err := c.service.AddTask(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Task added successfully (ID: %d)\n", task.ID)
	return nil
}
