package config

import (
	"os"
	"path/filepath"
)

// BrandforgePath returns the root directory for brandforge data.
// It uses $BRANDFORGE_PATH if set, otherwise defaults to ~/.brandforge.
func BrandforgePath() string {
	if v := os.Getenv("BRANDFORGE_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".brandforge")
	}
	return filepath.Join(home, ".brandforge")
}

// ConfigPath returns the path to the brandforge config file.
func ConfigPath() string {
	return filepath.Join(BrandforgePath(), "config.jsonc")
}

// DotenvPath returns the path to the brandforge .env file.
func DotenvPath() string {
	return filepath.Join(BrandforgePath(), ".env")
}
