package config

import (
	"fmt"
	"slices"

	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
)

// Environments accepted by ServiceConfig.
var validEnvironments = []string{"development", "staging", "production"}

// ServiceConfig holds the fields every binary carries. Application configs
// embed it:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Engine string `yaml:"engine" mapstructure:"engine"`
//	}
type ServiceConfig struct {
	Name        string                     `yaml:"name" mapstructure:"name"`
	Environment string                     `yaml:"environment" mapstructure:"environment"`
	Version     string                     `yaml:"version" mapstructure:"version"`
	Debug       bool                       `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config              `yaml:"logging" mapstructure:"logging"`
	Tracing     observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

// GetServiceConfig returns the base ServiceConfig. Embedding structs get it
// promoted.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs call it first from their own ApplyDefaults.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Version == "" {
		c.Version = "dev"
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Tracing.ApplyDefaults(c.Name, c.Version, c.Environment)
}

// Validate validates the base configuration fields.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvironments, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
