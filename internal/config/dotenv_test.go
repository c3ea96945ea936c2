package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDotenv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	return path
}

func TestLoadDotenvSetsVars(t *testing.T) {
	path := writeDotenv(t, `
# credentials
BRAND_TEST_A=hello
export BRAND_TEST_B="quoted value"
BRAND_TEST_C='single'
not-a-pair
`)
	for _, k := range []string{"BRAND_TEST_A", "BRAND_TEST_B", "BRAND_TEST_C"} {
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}

	if got := os.Getenv("BRAND_TEST_A"); got != "hello" {
		t.Errorf("BRAND_TEST_A = %q", got)
	}
	if got := os.Getenv("BRAND_TEST_B"); got != "quoted value" {
		t.Errorf("BRAND_TEST_B = %q", got)
	}
	if got := os.Getenv("BRAND_TEST_C"); got != "single" {
		t.Errorf("BRAND_TEST_C = %q", got)
	}
}

func TestLoadDotenvNeverOverrides(t *testing.T) {
	t.Setenv("BRAND_TEST_KEEP", "original")

	path := writeDotenv(t, "BRAND_TEST_KEEP=overwritten\n")
	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}

	if got := os.Getenv("BRAND_TEST_KEEP"); got != "original" {
		t.Errorf("BRAND_TEST_KEEP = %q, want original", got)
	}
}

func TestLoadDotenvMissingFile(t *testing.T) {
	if err := LoadDotenv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
}
