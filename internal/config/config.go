package config

import "time"

// Config is the root configuration for brandforge. It is constructed once at
// process entry and passed by reference into the pipeline; nothing reads
// ambient global state after startup.
type Config struct {
	Models   ModelsConfig   `json:"models"`
	Persona  PersonaConfig  `json:"persona"`
	Pipeline PipelineConfig `json:"pipeline"`
}

// ModelsConfig holds model provider configuration.
type ModelsConfig struct {
	Default   string                    `json:"default"`
	Providers map[string]ProviderConfig `json:"providers"`
}

// Provider returns the named provider config, falling back to the default
// provider when name is empty.
func (m ModelsConfig) Provider(name string) (ProviderConfig, bool) {
	if name == "" {
		name = m.Default
	}
	p, ok := m.Providers[name]
	return p, ok
}

// ProviderConfig configures a single LLM provider.
type ProviderConfig struct {
	Driver    string         `json:"driver"` // "openai", "anthropic", "ollama"
	Model     string         `json:"model"`
	BaseURL   string         `json:"base_url,omitempty"`
	Auth      AuthConfig     `json:"auth"`
	MaxTokens int            `json:"max_tokens,omitempty"`
	Timeout   Duration       `json:"timeout,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

// AuthConfig configures API key resolution.
type AuthConfig struct {
	APIKey string `json:"api_key,omitempty"` // direct key, or ${VAR} env reference
}

// PersonaConfig is the static descriptor of the single generation persona.
// It is immutable for the lifetime of a run.
type PersonaConfig struct {
	Role      string `json:"role"`
	Goal      string `json:"goal"`
	Backstory string `json:"backstory"`
}

// PipelineConfig holds the sequential runner settings.
type PipelineConfig struct {
	OutputDir     string   `json:"output_dir"`     // root holding one directory per run
	ContextWindow int      `json:"context_window"` // number of prior outputs fed to each step
	StepDelay     Duration `json:"step_delay"`     // pause after each executed (non-skipped) step
}

// Duration wraps time.Duration for JSON unmarshaling of values like "1.5s".
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}
