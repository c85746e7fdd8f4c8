package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-cli/internal/config"
	"task-cli/internal/errors"
	"task-cli/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "task-cli",
		Short: "A command-line task tracker",
		Long: `task-cli keeps a list of short tasks in a JSON file in the current directory.

Every task has an id, a description and a status (todo, in-progress or done).

EXAMPLES:
  task-cli add "Buy groceries"             # Add a task, prints its id
  task-cli update 1 "Buy groceries and cook dinner"
  task-cli mark-in-progress 1
  task-cli mark-done 1
  task-cli delete 1
  task-cli list                            # List all tasks
  task-cli list done                       # List tasks with a given status
  task-cli list --format json              # text, json, yaml or csv

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

    TASK_CLI_BACKEND                       Store backend, json or sqlite (default: json)
    TASK_CLI_DIR                           Directory holding the task file (default: .)
    TASK_CLI_FILE                          Task file name (default: tasks.json, tasks.db for sqlite)
    TASK_CLI_FILE_PERMISSIONS              Octal mode of the task file (default: 0644)
    TASK_CLI_TIME_FORMAT                   Go time layout for list output (default: RFC 3339)
    TASK_CLI_LIST_FORMAT                   Default list format (default: text)
    TASK_CLI_TIMEOUT                       Command timeout (default: 30s)
    TASK_CLI_VERBOSE                       Enable verbose logging (default: false)
    TASK_CLI_DEBUG                         Enable debug logging`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlags(); err != nil {
				return err
			}
			logging.Configure(app.errOut, app.config.Application.Verbose)

			ctx, cancel := root.commandContext(cmd)
			defer cancel()
			return app.openStore(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.NewUsageError(app.registry.GetUsage())
			}
			return errors.NewUnknownCommandError(args[0])
		},
	}
	root.cmd.SetOut(app.out)
	root.cmd.SetErr(app.errOut)
	root.cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewInvalidArgumentError("flag", nil, err.Error())
	})

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command against args
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(r.literalArgs(args))
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Store configuration
	flags.String("backend", "", "Store backend, json or sqlite (overrides TASK_CLI_BACKEND)")
	flags.String("dir", "", "Directory holding the task file (overrides TASK_CLI_DIR)")
	flags.String("file", "", "Task file name (overrides TASK_CLI_FILE)")

	// Display configuration
	flags.String("time-format", "", "Go time layout for list output (overrides TASK_CLI_TIME_FORMAT)")

	// Application configuration
	flags.Duration("timeout", 0, "Command timeout (overrides TASK_CLI_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose logging (overrides TASK_CLI_VERBOSE)")
}

// addSubcommands adds one cobra command per registered command
func (r *RootCommand) addSubcommands() {
	for _, info := range r.app.registry.Commands() {
		sub := &cobra.Command{
			Use:   strings.TrimPrefix(info.Usage, "Usage: task-cli "),
			Short: info.Short,
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext(cmd)
				defer cancel()

				return info.New(r.app).Execute(ctx, args)
			},
		}
		if info.Name == "list" {
			sub.Flags().StringP("format", "f", "", "Output format: text, json, yaml or csv (overrides TASK_CLI_LIST_FORMAT)")
			sub.PreRunE = func(cmd *cobra.Command, args []string) error {
				if format, _ := cmd.Flags().GetString("format"); cmd.Flags().Changed("format") {
					r.app.config.Display.ListFormat = format
				}
				return nil
			}
		}
		r.cmd.AddCommand(sub)
	}
}

// commandContext derives the context a command runs with from the configured timeout
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil && r.app.config.Application.Timeout > 0 {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// applyFlags copies the global flags that were set on the command line into the configuration
func (r *RootCommand) applyFlags() error {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("dir") {
		v, _ := flags.GetString("dir")
		overrides.Dir = &v
	}
	if flags.Changed("file") {
		v, _ := flags.GetString("file")
		overrides.File = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetDuration("timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	overrides.Apply(r.app.config)
	if err := r.app.config.Validate(); err != nil {
		return errors.NewInvalidArgumentError("config", nil, err.Error())
	}
	return nil
}

// literalArgs ends flag parsing right after the name of a literal command,
// so "delete -3" or "add -x marks the spot" reach the handler as written.
// Global flags are still honoured before the command name.
func (r *RootCommand) literalArgs(args []string) []string {
	flags := r.cmd.PersistentFlags()

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			if !strings.Contains(arg, "=") && takesValue(flags, arg) {
				i++
			}
			continue
		}

		info, ok := r.app.registry.Lookup(arg)
		if !ok || !info.Literal {
			return args
		}
		rest := args[i+1:]
		if len(rest) > 0 && (rest[0] == "--" || rest[0] == "-h" || rest[0] == "--help") {
			return args
		}

		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i+1]...)
		out = append(out, "--")
		return append(out, rest...)
	}
	return args
}

// takesValue reports whether the flag named by arg consumes the next argument
func takesValue(flags *pflag.FlagSet, arg string) bool {
	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		flag = flags.Lookup(arg[2:])
	case len(arg) == 2:
		flag = flags.ShorthandLookup(arg[1:])
	}
	return flag != nil && flag.NoOptDefVal == ""
}
