package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/tailscale/hujson"
)

var envTemplateRe = regexp.MustCompile(`\$\{\{\s*\.Env\.(\w+)\s*\}\}`)

// Load reads a JSONC config file, expands ${{ .Env.VAR }} templates, strips
// comments and trailing commas, unmarshals it into Config, and applies
// defaults. A missing file is not an error: the built-in defaults describe a
// complete, working pipeline.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		// Expand env templates before standardizing, since templates live in strings.
		expanded := expandEnvTemplates(string(data))

		std, err := hujson.Standardize([]byte(expanded))
		if err != nil {
			return nil, fmt.Errorf("standardize config: %w", err)
		}
		if err := json.Unmarshal(std, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// expandEnvTemplates replaces ${{ .Env.VAR }} with the env var value.
func expandEnvTemplates(s string) string {
	return envTemplateRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := envTemplateRe.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		return os.Getenv(parts[1])
	})
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Models.Providers == nil {
		cfg.Models.Providers = map[string]ProviderConfig{}
	}
	if _, ok := cfg.Models.Providers["openai"]; !ok {
		cfg.Models.Providers["openai"] = ProviderConfig{
			Driver: "openai",
			Model:  "gpt-4o-mini", // safer throughput for long sequential runs
		}
	}
	if cfg.Models.Default == "" {
		cfg.Models.Default = "openai"
	}

	if cfg.Persona.Role == "" {
		cfg.Persona.Role = "Founder Advisory Brand Architect"
	}
	if cfg.Persona.Goal == "" {
		cfg.Persona.Goal = "Design and deliver a complete, high-authority consulting brand for mahmoudnasr.io."
	}
	if cfg.Persona.Backstory == "" {
		cfg.Persona.Backstory = "Senior startup advisor, brand strategist, and conversion-focused copywriter. " +
			"Founder-first, decisive, avoids buzzwords, delivers publishable assets."
	}

	if cfg.Pipeline.OutputDir == "" {
		cfg.Pipeline.OutputDir = "outputs"
	}
	if cfg.Pipeline.ContextWindow == 0 {
		cfg.Pipeline.ContextWindow = 3
	}
	if cfg.Pipeline.StepDelay == 0 {
		cfg.Pipeline.StepDelay = Duration(1500 * time.Millisecond) // smooths request bursts
	}
}
