package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/mahmoudnasr/brandforge/internal/config"
	"github.com/mahmoudnasr/brandforge/internal/pipeline"
	"github.com/mahmoudnasr/brandforge/internal/storage/runstore"
)

// NewShowCommand returns the show subcommand.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a run artifact (the combined output by default)",
		ArgsUsage: "[run_id]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "step",
				Usage: "Show a single task's checkpoint instead of the combined output",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Skip markdown rendering even on a terminal",
			},
		},
		Action: showArtifact,
	}
}

func showArtifact(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store := runstore.New(cfg.Pipeline.OutputDir)

	runID := cmd.Args().First()
	if runID == "" {
		ids, err := store.List()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("no runs under %s", cfg.Pipeline.OutputDir)
		}
		runID = ids[len(ids)-1]
	}

	name := pipeline.FinalArtifactName
	if step := cmd.Int("step"); step > 0 {
		name = pipeline.TaskSpec{Ordinal: step}.CheckpointName()
	}

	content, ok, err := store.Load(runID, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run %s has no %s", runID, name)
	}

	if cmd.Bool("raw") || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(content)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(content)
		return nil
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		fmt.Print(content)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
