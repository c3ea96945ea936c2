package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mahmoudnasr/brandforge/cmd/commands"
	"github.com/mahmoudnasr/brandforge/internal/config"
)

func main() {
	// Working-directory .env first, then the user-level file; neither
	// overrides variables already present in the environment.
	if err := config.LoadDotenv(".env"); err != nil {
		slog.Warn("failed to load ./.env", "error", err)
	}
	if err := config.LoadDotenv(config.DotenvPath()); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := commands.NewRootCommand()
	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
