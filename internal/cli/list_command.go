package cli

import (
	"context"
	"io"

	"task-cli/internal/config"
	"task-cli/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	service services.TaskService
	config  *config.Config
	out     io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{service: app.service, config: app.config, out: app.out}
}

// Execute runs the list command.
// Exactly one argument filters by status; with none, or with several, every task is listed.
// A status that no task has gives an empty list rather than an error.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	renderer, err := NewRenderer(c.config.Display.ListFormat, c.config.Display.TimeFormat)
	if err != nil {
		return err
	}

	var filter string
	if len(args) == 1 {
		filter = args[0]
	}

	tasks, err := c.service.ListTasks(ctx, filter)
	if err != nil {
		return err
	}

	return renderer.Render(c.out, tasks)
}
