package models

import (
	"fmt"
	"os"
	"strings"

	"github.com/mahmoudnasr/brandforge/internal/config"
)

// ResolvedAuth holds a resolved API credential.
type ResolvedAuth struct {
	Value string
}

// ResolveAuth resolves the credential for a provider before any model call
// is made. Resolution order: direct api_key → ${VAR} reference → driver
// default env var. A provider that cannot resolve a credential is a fatal
// configuration error, surfaced before a run directory exists.
func ResolveAuth(cfg config.ProviderConfig) (ResolvedAuth, error) {
	key := strings.TrimSpace(cfg.Auth.APIKey)
	if strings.HasPrefix(key, "${") && strings.HasSuffix(key, "}") {
		key = os.Getenv(key[2 : len(key)-1])
	}
	if key != "" {
		return ResolvedAuth{Value: key}, nil
	}

	envVar, ok := defaultEnvVar(cfg.Driver)
	if !ok {
		return ResolvedAuth{}, fmt.Errorf("unknown driver %q: cannot resolve auth", cfg.Driver)
	}
	if key := os.Getenv(envVar); key != "" {
		return ResolvedAuth{Value: key}, nil
	}
	return ResolvedAuth{}, fmt.Errorf("missing credential: %s not set", envVar)
}

func defaultEnvVar(driver string) (string, bool) {
	switch strings.ToLower(driver) {
	case "openai":
		return "OPENAI_API_KEY", true
	case "anthropic":
		return "ANTHROPIC_API_KEY", true
	default:
		return "", false
	}
}
