// Package runstore persists run artifacts as flat files, one directory per
// run. Artifact absence is a normal outcome, not an error: the pipeline
// resumes by probing for checkpoints that may not exist yet.
package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RunStatus is advisory metadata recorded in meta.json. Checkpoint presence,
// not status, decides what a resumed run skips.
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// RunMeta describes a run directory.
type RunMeta struct {
	CreatedAt time.Time `json:"created_at"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	Status    RunStatus `json:"status"`
}

// Store reads and writes named text artifacts under <baseDir>/<runID>/.
// Single process, single writer; the mutex only guards the store's own
// compound operations.
type Store struct {
	mu      sync.RWMutex
	baseDir string
}

// New creates a Store rooted at baseDir. The directory is created lazily on
// first write.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// NewRunID derives a run identifier from a timestamp, second resolution.
func NewRunID(now time.Time) string {
	return now.Format("run_20060102_150405")
}

// Dir returns the directory path for a run.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

// EnsureRun creates the run directory (and parents) if it doesn't exist.
func (s *Store) EnsureRun(runID string) error {
	if err := os.MkdirAll(s.Dir(runID), 0o755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	return nil
}

// Save writes content as a named artifact under the run directory, creating
// the directory on first use. Existing artifacts are overwritten; the runner
// checks checkpoint existence before executing, so task files are write-once
// in practice. The write is atomic (tmp + rename).
func (s *Store) Save(runID, name, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.EnsureRun(runID); err != nil {
		return err
	}

	path := filepath.Join(s.Dir(runID), name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s tmp: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// Load returns the named artifact's content. A missing file or run directory
// yields ok=false with a nil error.
func (s *Store) Load(runID, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.Dir(runID), name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), true, nil
}

// List returns the run IDs under baseDir, oldest first. A missing base
// directory yields an empty list.
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list runs dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "run_") {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Artifacts returns the artifact file names in a run directory, sorted.
func (s *Store) Artifacts(runID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.Dir(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list run %s: %w", runID, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// WriteMeta atomically writes the run's meta.json.
func (s *Store) WriteMeta(runID string, meta RunMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	return s.Save(runID, "meta.json", string(data))
}

// ReadMeta reads the run's meta.json. ok=false when the run has none.
func (s *Store) ReadMeta(runID string) (RunMeta, bool, error) {
	content, ok, err := s.Load(runID, "meta.json")
	if err != nil || !ok {
		return RunMeta{}, false, err
	}

	var meta RunMeta
	if err := json.Unmarshal([]byte(content), &meta); err != nil {
		return RunMeta{}, false, fmt.Errorf("unmarshal meta: %w", err)
	}
	return meta, true, nil
}
