package main

import (
	"context"
	"fmt"
	"os"

	"todo-tracker/internal/cli"
	"todo-tracker/internal/config"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
	"todo-tracker/internal/tui"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg, func(ctx context.Context, cfg *config.Config) (services.TaskService, error) {
		return services.Open(ctx, cfg)
	}, tui.Run)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}
}
