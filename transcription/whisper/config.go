package whisper

import (
	"fmt"
	"time"
)

// Loader kinds.
const (
	LoaderSidecar = "sidecar"
	LoaderCLI     = "cli"
)

const (
	defaultSidecarURL = "http://localhost:8387"
	defaultModelSize  = "large"
	defaultBinary     = "whisper"
	defaultTimeout    = 30 * time.Minute
)

// Config holds configuration for the local whisper backend.
type Config struct {
	// Loader selects how the model is run: "sidecar" or "cli".
	Loader string `yaml:"loader" mapstructure:"loader" validate:"omitempty,oneof=sidecar cli"`
	// URL is the faster-whisper sidecar address.
	URL string `yaml:"url" mapstructure:"url" validate:"omitempty,url"`
	// Model is the model size selector (tiny, base, small, medium, large).
	Model string `yaml:"model" mapstructure:"model"`
	// Binary is the whisper CLI executable.
	Binary string `yaml:"binary" mapstructure:"binary"`
	// ModelDir is where the CLI caches downloaded weights. Empty uses its default.
	ModelDir string `yaml:"model_dir" mapstructure:"model_dir"`
	// Timeout bounds one inference call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Loader == "" {
		c.Loader = LoaderSidecar
	}
	if c.URL == "" {
		c.URL = defaultSidecarURL
	}
	if c.Model == "" {
		c.Model = defaultModelSize
	}
	if c.Binary == "" {
		c.Binary = defaultBinary
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks the loader selection.
func (c *Config) Validate() error {
	switch c.Loader {
	case LoaderSidecar, LoaderCLI:
		return nil
	default:
		return fmt.Errorf("whisper: unknown loader %q", c.Loader)
	}
}
