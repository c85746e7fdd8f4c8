package cli

import (
	"context"
	"io"
	"os"

	"task-cli/internal/config"
	"task-cli/internal/errors"
	"task-cli/internal/repository"
	"task-cli/internal/services"
)

// StoreFactory opens the task store described by the configuration
type StoreFactory func(ctx context.Context, cfg *config.Config) (repository.Store, error)

// App represents the main CLI application
type App struct {
	config       *config.Config
	newStore     StoreFactory
	clock        services.Clock
	out          io.Writer
	errOut       io.Writer
	registry     *CommandRegistry
	errorHandler *ErrorHandler

	// set once the command line has been parsed
	store   repository.Store
	service services.TaskService
}

// AppOption configures an App
type AppOption func(*App)

// WithOutput sets the writers for command output and error messages
func WithOutput(out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithStoreFactory replaces config.CreateStore as the way the store is opened
func WithStoreFactory(factory StoreFactory) AppOption {
	return func(a *App) {
		a.newStore = factory
	}
}

// WithClock sets the clock used for task timestamps
func WithClock(clock services.Clock) AppOption {
	return func(a *App) {
		a.clock = clock
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config:   cfg,
		newStore: config.CreateStore,
		out:      os.Stdout,
		errOut:   os.Stderr,
		registry: NewCommandRegistry(),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.errorHandler = NewErrorHandler(app.errOut)
	return app
}

// Run executes the CLI application with the given arguments.
// A failure is reported on the error writer and returned.
func (a *App) Run(ctx context.Context, args []string) error {
	root := NewRootCommand(a)
	err := root.Execute(ctx, args)

	if closeErr := a.closeStore(); err == nil {
		err = closeErr
	}

	if err != nil {
		a.errorHandler.Report(err)
	}
	return err
}

// openStore opens the configured store and builds the task service on top of it
func (a *App) openStore(ctx context.Context) error {
	store, err := a.newStore(ctx, a.config)
	if err != nil {
		return err
	}
	a.store = store

	var opts []services.Option
	if a.clock != nil {
		opts = append(opts, services.WithClock(a.clock))
	}
	a.service = services.NewTaskService(store, opts...)
	return nil
}

func (a *App) closeStore() error {
	if a.store == nil {
		return nil
	}
	store := a.store
	a.store, a.service = nil, nil
	if err := store.Close(); err != nil {
		return errors.NewStorageError("close "+store.Path(), err)
	}
	return nil
}
