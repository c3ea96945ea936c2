package runstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRunID(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if got, want := NewRunID(ts), "run_20250314_092653"; got != want {
		t.Errorf("NewRunID = %q, want %q", got, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Save("run_x", "task_01.md", "# Positioning\ncontent"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("run_x", "task_01.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("artifact should exist")
	}
	if got != "# Positioning\ncontent" {
		t.Errorf("content = %q", got)
	}

	// No stray tmp file after the atomic write.
	if _, err := os.Stat(filepath.Join(s.Dir("run_x"), "task_01.md.tmp")); !os.IsNotExist(err) {
		t.Error("tmp file left behind")
	}
}

func TestLoadAbsentIsNotAnError(t *testing.T) {
	s := New(t.TempDir())

	// Missing run directory.
	if _, ok, err := s.Load("run_none", "task_01.md"); ok || err != nil {
		t.Errorf("Load missing run = ok %v, err %v", ok, err)
	}

	// Existing run, missing artifact.
	if err := s.EnsureRun("run_y"); err != nil {
		t.Fatalf("EnsureRun: %v", err)
	}
	if _, ok, err := s.Load("run_y", "task_02.md"); ok || err != nil {
		t.Errorf("Load missing artifact = ok %v, err %v", ok, err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Save("run_z", "FINAL_ALL_STEPS_RAW.md", "first"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("run_z", "FINAL_ALL_STEPS_RAW.md", "second"); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, _, err := s.Load("run_z", "FINAL_ALL_STEPS_RAW.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "second" {
		t.Errorf("content = %q, want second", got)
	}
}

func TestListRuns(t *testing.T) {
	base := t.TempDir()
	s := New(base)

	// Empty base dir that doesn't exist yet.
	ids, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("List = %v, want empty", ids)
	}

	for _, id := range []string{"run_20250101_000000", "run_20250102_000000"} {
		if err := s.EnsureRun(id); err != nil {
			t.Fatalf("EnsureRun: %v", err)
		}
	}
	// Non-run entries are ignored.
	if err := os.WriteFile(filepath.Join(base, "stray.txt"), nil, 0o644); err != nil {
		t.Fatalf("write stray: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(base, "not-a-run"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ids, err = s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 || ids[0] != "run_20250101_000000" || ids[1] != "run_20250102_000000" {
		t.Errorf("List = %v", ids)
	}
}

func TestArtifacts(t *testing.T) {
	s := New(t.TempDir())

	if names, err := s.Artifacts("run_none"); err != nil || names != nil {
		t.Errorf("Artifacts missing run = %v, %v", names, err)
	}

	for _, name := range []string{"task_02.md", "task_01.md"} {
		if err := s.Save("run_a", name, "x"); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	names, err := s.Artifacts("run_a")
	if err != nil {
		t.Fatalf("Artifacts: %v", err)
	}
	if len(names) != 2 || names[0] != "task_01.md" || names[1] != "task_02.md" {
		t.Errorf("Artifacts = %v", names)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	if _, ok, err := s.ReadMeta("run_m"); ok || err != nil {
		t.Errorf("ReadMeta missing = ok %v, err %v", ok, err)
	}

	want := RunMeta{
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		Status:    StatusRunning,
	}
	if err := s.WriteMeta("run_m", want); err != nil {
		t.Fatalf("WriteMeta: %v", err)
	}

	got, ok, err := s.ReadMeta("run_m")
	if err != nil {
		t.Fatalf("ReadMeta: %v", err)
	}
	if !ok {
		t.Fatal("meta should exist")
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || got.Provider != want.Provider ||
		got.Model != want.Model || got.Status != want.Status {
		t.Errorf("ReadMeta = %+v, want %+v", got, want)
	}
}
