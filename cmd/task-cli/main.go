package main

import (
	"context"
	"fmt"
	"os"

	"task-cli/internal/cli"
	"task-cli/internal/config"
	"task-cli/internal/logging"
)

func main() {
	// Values from .env fill in variables the environment does not already set
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(os.Stderr, cfg.Application.Verbose)

	app := cli.NewApp(cfg)

	// Each command derives its own deadline from the configured timeout
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		// the message has already been written by the app
		cancel()
		os.Exit(1)
	}
}
