package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mahmoudnasr/brandforge/internal/config"
	"github.com/mahmoudnasr/brandforge/internal/events"
	"github.com/mahmoudnasr/brandforge/internal/gen"
	"github.com/mahmoudnasr/brandforge/internal/models"
	"github.com/mahmoudnasr/brandforge/internal/pipeline"
	"github.com/mahmoudnasr/brandforge/internal/storage/runstore"
)

// NewRunCommand returns the run subcommand.
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Execute the brand pipeline, honoring existing checkpoints",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "resume",
				Aliases: []string{"r"},
				Usage:   "Run ID of an existing run directory to resume (empty = fresh run)",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "Provider name from config (empty = configured default)",
			},
			&cli.StringFlag{
				Name:  "tasks",
				Usage: "YAML task file replacing the built-in branding sequence",
			},
		},
		Action: runPipeline,
	}
}

func runPipeline(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	providerName := cmd.String("provider")
	provider, ok := cfg.Models.Provider(providerName)
	if !ok {
		return fmt.Errorf("provider %q not configured", providerName)
	}

	tasks := pipeline.BuiltinTasks()
	if path := cmd.String("tasks"); path != "" {
		tasks, err = pipeline.LoadTaskFile(path)
		if err != nil {
			return err
		}
	}

	// The credential gate: model construction resolves auth and fails here,
	// before any run directory exists or any task executes.
	chatModel, err := models.CreateModel(ctx, provider)
	if err != nil {
		return fmt.Errorf("create model: %w", err)
	}

	store := runstore.New(cfg.Pipeline.OutputDir)
	runID := cmd.String("resume")
	if runID == "" {
		runID = runstore.NewRunID(time.Now())
	} else if _, err := os.Stat(store.Dir(runID)); err != nil {
		return fmt.Errorf("resume run %s: %w", runID, err)
	}

	meta := runstore.RunMeta{
		CreatedAt: time.Now(),
		Provider:  provider.Driver,
		Model:     provider.Model,
		Status:    runstore.StatusRunning,
	}
	if prev, ok, _ := store.ReadMeta(runID); ok {
		meta.CreatedAt = prev.CreatedAt
	}
	if err := store.WriteMeta(runID, meta); err != nil {
		return fmt.Errorf("write run meta: %w", err)
	}

	bus := events.NewBus()
	defer bus.Close()
	bus.Subscribe(reportProgress)

	runner := pipeline.NewRunner(pipeline.RunnerConfig{
		Store:  store,
		Svc:    gen.NewChatService(chatModel, cfg.Persona),
		Tasks:  tasks,
		Bus:    bus,
		RunID:  runID,
		Window: cfg.Pipeline.ContextWindow,
		Delay:  cfg.Pipeline.StepDelay.Duration(),
	})

	fmt.Printf("run %s (%d tasks, %s/%s)\n", runID, len(tasks), provider.Driver, provider.Model)

	if _, err := runner.Run(ctx); err != nil {
		meta.Status = runstore.StatusFailed
		if metaErr := store.WriteMeta(runID, meta); metaErr != nil {
			slog.Error("update run meta", "error", metaErr)
		}
		return fmt.Errorf("run %s: %w", runID, err)
	}

	meta.Status = runstore.StatusCompleted
	if err := store.WriteMeta(runID, meta); err != nil {
		slog.Error("update run meta", "error", err)
	}

	fmt.Printf("outputs in: %s\n", store.Dir(runID))
	return nil
}

// reportProgress prints the sequential status lines for a run.
func reportProgress(e events.Event) {
	switch p := e.Payload.(type) {
	case events.StepSkippedPayload:
		fmt.Printf("task %02d skipped (already saved): %s\n", p.Ordinal, p.Artifact)
	case events.StepStartedPayload:
		fmt.Printf("task %02d/%02d running: %s\n", p.Ordinal, p.Total, p.Title)
	case events.StepSavedPayload:
		fmt.Printf("task %02d saved: %s (%s)\n", p.Ordinal, p.Artifact, p.Duration.Round(100*time.Millisecond))
	case events.StepFailedPayload:
		kind := "error"
		if p.RateLimited {
			kind = "rate limited"
		}
		fmt.Printf("task %02d failed (%s), details in %s\n", p.Ordinal, kind, p.Artifact)
	case events.RunCompletePayload:
		fmt.Printf("all %d tasks done, combined output: %s\n", p.Steps, p.Artifact)
	}
}

func setupLogging(debug bool) {
	if debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}
