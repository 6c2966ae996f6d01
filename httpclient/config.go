package httpclient

import (
	"errors"
	"time"

	"github.com/kbukum/scribekit/resilience"
)

const defaultTimeout = 30 * time.Second

// Config configures a Client. Auth and Retry are set in code by the
// backend that owns the client, never read from files.
type Config struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds a whole request, body included.
	Timeout   time.Duration     `yaml:"timeout" mapstructure:"timeout"`
	UserAgent string            `yaml:"user_agent" mapstructure:"user_agent"`
	Headers   map[string]string `yaml:"headers" mapstructure:"headers"`

	Auth  *AuthConfig             `yaml:"-" mapstructure:"-"`
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults sets a 30s timeout when none is given.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate rejects a non-positive timeout.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("httpclient: timeout must be positive")
	}
	return nil
}

// DefaultRetryConfig is the default backoff restricted to retryable errors.
func DefaultRetryConfig() *resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.RetryIf = IsRetryable
	return &cfg
}
