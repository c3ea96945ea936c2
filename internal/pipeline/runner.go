package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mahmoudnasr/brandforge/internal/events"
	"github.com/mahmoudnasr/brandforge/internal/gen"
	"github.com/mahmoudnasr/brandforge/internal/storage/runstore"
)

// Runner drives the task sequence against one run directory. Execution is
// strictly sequential: one in-flight generation call, no retries, no
// runner-side timeout.
type Runner struct {
	store  *runstore.Store
	svc    gen.Service
	tasks  []TaskSpec
	bus    *events.Bus
	runID  string
	window int
	delay  time.Duration
}

// RunnerConfig holds dependencies for creating a Runner.
type RunnerConfig struct {
	Store  *runstore.Store
	Svc    gen.Service
	Tasks  []TaskSpec
	Bus    *events.Bus // optional
	RunID  string
	Window int           // context window size (0 = default 3)
	Delay  time.Duration // pause after each executed step
}

// NewRunner creates a runner for one run directory.
func NewRunner(cfg RunnerConfig) *Runner {
	window := cfg.Window
	if window == 0 {
		window = 3
	}
	return &Runner{
		store:  cfg.Store,
		svc:    cfg.Svc,
		tasks:  cfg.Tasks,
		bus:    cfg.Bus,
		runID:  cfg.RunID,
		window: window,
		delay:  cfg.Delay,
	}
}

// Run executes every task in order, skipping those whose checkpoint already
// exists, and writes the final artifact after a fully successful pass. On
// the first failure it records an error artifact and returns; tasks after
// the failed one never run. Returns the final concatenated output.
func (r *Runner) Run(ctx context.Context) (string, error) {
	outputs := make([]string, 0, len(r.tasks))

	for _, task := range r.tasks {
		checkpoint := task.CheckpointName()

		existing, ok, err := r.store.Load(r.runID, checkpoint)
		if err != nil {
			return "", fmt.Errorf("check checkpoint %s: %w", checkpoint, err)
		}
		if ok {
			// Resume: the stored output stands in for a fresh one, feeding
			// later context windows identically.
			outputs = append(outputs, existing)
			r.publish(events.StepSkippedPayload{Ordinal: task.Ordinal, Artifact: checkpoint})
			slog.Debug("checkpoint found", "run_id", r.runID, "artifact", checkpoint)
			continue
		}

		r.publish(events.StepStartedPayload{Ordinal: task.Ordinal, Total: len(r.tasks), Title: task.Title})

		window := Window(outputs, r.window)
		started := time.Now()

		text, err := r.svc.Generate(ctx, task.FullPrompt(), window)
		if err != nil {
			return "", r.failStep(task, err)
		}

		if err := r.store.Save(r.runID, checkpoint, text); err != nil {
			return "", fmt.Errorf("save checkpoint %s: %w", checkpoint, err)
		}
		outputs = append(outputs, text)
		r.publish(events.StepSavedPayload{Ordinal: task.Ordinal, Artifact: checkpoint, Duration: time.Since(started)})

		// Fixed pause to smooth request bursts against provider rate limits.
		if err := r.pause(ctx); err != nil {
			return "", err
		}
	}

	final := strings.Join(outputs, FinalSeparator)
	if err := r.store.Save(r.runID, FinalArtifactName, final); err != nil {
		return "", fmt.Errorf("save final artifact: %w", err)
	}
	r.publish(events.RunCompletePayload{RunID: r.runID, Artifact: FinalArtifactName, Steps: len(r.tasks)})

	return final, nil
}

// failStep records the error artifact and wraps the failure for the caller.
// Rate-limit and generic failures take the same path; the classification
// only shows up in the event and the artifact text.
func (r *Runner) failStep(task TaskSpec, taskErr error) error {
	artifact := task.ErrorArtifactName()

	var rle *gen.RateLimitError
	rateLimited := errors.As(taskErr, &rle)

	if err := r.store.Save(r.runID, artifact, taskErr.Error()); err != nil {
		slog.Error("save error artifact", "run_id", r.runID, "artifact", artifact, "error", err)
	}

	r.publish(events.StepFailedPayload{
		Ordinal:     task.Ordinal,
		Artifact:    artifact,
		Error:       taskErr.Error(),
		RateLimited: rateLimited,
	})

	return fmt.Errorf("task %02d: %w", task.Ordinal, taskErr)
}

func (r *Runner) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(r.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) publish(payload events.EventPayload) {
	if r.bus != nil {
		r.bus.Publish(events.NewEvent(payload))
	}
}
