// Package commands wires the brandforge CLI.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/mahmoudnasr/brandforge/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "brandforge",
		Usage: "Generate a founder-advisory brand package step by step, with resumable checkpoints",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewRunCommand(),
			NewRunsCommand(),
			NewShowCommand(),
		},
		DefaultCommand: "run",
	}
}
