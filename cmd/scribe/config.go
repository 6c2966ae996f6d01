package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kbukum/scribekit/config"
	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/storage"
	"github.com/kbukum/scribekit/transcription/assemblyai"
	"github.com/kbukum/scribekit/transcription/whisper"
	"github.com/kbukum/scribekit/validation"
)

const serviceName = "scribe"

// AppConfig is the scribe configuration, read from config.yml, .env and
// SCRIBE_* environment variables.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	// Engine preselects the backend. Empty asks interactively.
	Engine string `yaml:"engine" mapstructure:"engine" validate:"omitempty,oneof=whisper assemblyai"`
	// Language preselects the language hint. Empty asks interactively.
	Language string `yaml:"language" mapstructure:"language" validate:"omitempty,oneof=auto en en_us it es fr de"`

	Whisper    whisper.Config    `yaml:"whisper" mapstructure:"whisper"`
	AssemblyAI assemblyai.Config `yaml:"assemblyai" mapstructure:"assemblyai"`
	Storage    StorageConfig     `yaml:"storage" mapstructure:"storage"`
	Export     storage.Config    `yaml:"export" mapstructure:"export"`
	YTDLP      YTDLPConfig       `yaml:"ytdlp" mapstructure:"ytdlp"`
}

// StorageConfig locates project directories.
type StorageConfig struct {
	BasePath string `yaml:"base_path" mapstructure:"base_path"`
}

// YTDLPConfig configures the media fetch tool.
type YTDLPConfig struct {
	Binary string `yaml:"binary" mapstructure:"binary"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		ServiceConfig: config.ServiceConfig{Name: serviceName},
		AssemblyAI:    assemblyai.DefaultConfig(),
		Storage:       StorageConfig{BasePath: "."},
	}
}

// ApplyDefaults fills in defaults after loading.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Whisper.ApplyDefaults()
	c.AssemblyAI.ApplyDefaults()
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "."
	}
	if c.Export.Provider != "" {
		c.Export.ApplyDefaults()
	}
}

// Validate checks struct tags and the base service fields.
func (c *AppConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if c.Export.Provider != "" {
		if available := storage.Providers(); !slices.Contains(available, c.Export.Provider) {
			return errors.InvalidInput("export.provider", fmt.Sprintf("%q is not available in this build (available: %s)",
				c.Export.Provider, strings.Join(available, ", ")))
		}
		if err := c.Export.Validate(); err != nil {
			return errors.InvalidInput("export", err.Error())
		}
	}
	return nil
}

// ExportEnabled reports whether an export destination is configured.
func (c *AppConfig) ExportEnabled() bool { return c.Export.Provider != "" }

// loadConfig reads configuration, with the explicit path taking precedence
// over the search path.
func loadConfig(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	opts := []config.LoaderOption{
		config.WithEnvAlias("ASSEMBLYAI_API_KEY", "assemblyai.api_key"),
	}
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
