package cli

import (
	"context"

	"task-cli/internal/domain"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandInfo describes one subcommand
type CommandInfo struct {
	Name  string
	Short string
	// Usage is printed verbatim when the command gets too few arguments
	Usage string
	// Literal commands receive every argument after their name untouched,
	// so descriptions and ids starting with "-" are not taken as flags
	Literal bool

	New func(app *App) Command
}

// Usage messages
const (
	rootUsage           = "Usage: task-cli <command> [arguments]"
	addUsage            = "Usage: task-cli add <description>"
	updateUsage         = "Usage: task-cli update <task_id> <new_description>"
	deleteUsage         = "Usage: task-cli delete <task_id>"
	markInProgressUsage = "Usage: task-cli mark-in-progress <task_id>"
	markDoneUsage       = "Usage: task-cli mark-done <task_id>"
	listUsage           = "Usage: task-cli list [todo|in-progress|done]"
)

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands []CommandInfo
	index    map[string]int
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry() *CommandRegistry {
	registry := &CommandRegistry{
		index: make(map[string]int),
	}

	registry.Register(CommandInfo{
		Name:    "add",
		Short:   "Add a new task",
		Usage:   addUsage,
		Literal: true,
		New:     func(app *App) Command { return NewAddCommand(app) },
	})
	registry.Register(CommandInfo{
		Name:    "update",
		Short:   "Change the description of a task",
		Usage:   updateUsage,
		Literal: true,
		New:     func(app *App) Command { return NewUpdateCommand(app) },
	})
	registry.Register(CommandInfo{
		Name:    "delete",
		Short:   "Delete a task",
		Usage:   deleteUsage,
		Literal: true,
		New:     func(app *App) Command { return NewDeleteCommand(app) },
	})
	registry.Register(CommandInfo{
		Name:    "mark-in-progress",
		Short:   "Mark a task as in-progress",
		Usage:   markInProgressUsage,
		Literal: true,
		New: func(app *App) Command {
			return NewMarkCommand(app, domain.StatusInProgress, markInProgressUsage)
		},
	})
	registry.Register(CommandInfo{
		Name:    "mark-done",
		Short:   "Mark a task as done",
		Usage:   markDoneUsage,
		Literal: true,
		New: func(app *App) Command {
			return NewMarkCommand(app, domain.StatusDone, markDoneUsage)
		},
	})
	registry.Register(CommandInfo{
		Name:  "list",
		Short: "List tasks, optionally only those with the given status",
		Usage: listUsage,
		New:   func(app *App) Command { return NewListCommand(app) },
	})

	return registry
}

// Register adds a command to the registry, replacing one with the same name
func (r *CommandRegistry) Register(info CommandInfo) {
	if i, exists := r.index[info.Name]; exists {
		r.commands[i] = info
		return
	}
	r.index[info.Name] = len(r.commands)
	r.commands = append(r.commands, info)
}

// Lookup returns the command registered under name
func (r *CommandRegistry) Lookup(name string) (CommandInfo, bool) {
	i, exists := r.index[name]
	if !exists {
		return CommandInfo{}, false
	}
	return r.commands[i], true
}

// Commands returns all registered commands in registration order
func (r *CommandRegistry) Commands() []CommandInfo {
	return append([]CommandInfo(nil), r.commands...)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return rootUsage
}
