package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/mahmoudnasr/brandforge/internal/config"
	"github.com/mahmoudnasr/brandforge/internal/storage/runstore"
)

// NewRunsCommand returns the runs subcommand.
func NewRunsCommand() *cli.Command {
	return &cli.Command{
		Name:   "runs",
		Usage:  "List run directories and their progress",
		Action: listRuns,
	}
}

func listRuns(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store := runstore.New(cfg.Pipeline.OutputDir)
	ids, err := store.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Printf("no runs under %s\n", cfg.Pipeline.OutputDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTATUS\tMODEL\tCHECKPOINTS\tFINAL")
	for _, id := range ids {
		status, model := "-", "-"
		if meta, ok, err := store.ReadMeta(id); err == nil && ok {
			status = string(meta.Status)
			model = meta.Model
		}

		artifacts, err := store.Artifacts(id)
		if err != nil {
			return err
		}
		checkpoints, final := summarize(artifacts)

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", id, status, model, checkpoints, final)
	}
	return w.Flush()
}

// summarize counts task checkpoints and reports whether the combined
// artifact exists.
func summarize(artifacts []string) (int, string) {
	checkpoints := 0
	final := "no"
	for _, name := range artifacts {
		switch {
		case strings.HasPrefix(name, "task_") && strings.HasSuffix(name, ".md"):
			checkpoints++
		case name == "FINAL_ALL_STEPS_RAW.md":
			final = "yes"
		}
	}
	return checkpoints, final
}
