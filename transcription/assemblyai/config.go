package assemblyai

import (
	"errors"
	"time"
)

// DefaultBaseURL is the AssemblyAI v2 API root.
const DefaultBaseURL = "https://api.assemblyai.com/v2"

const (
	defaultPollInterval = 5 * time.Second
	defaultPollTimeout  = 3 * time.Hour
	defaultTimeout      = 10 * time.Minute
)

// Config holds configuration for the AssemblyAI backend.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`
	// APIKey is sent verbatim in the authorization header.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// PollInterval is the delay between job status queries.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
	// MaxPollAttempts caps status queries. Zero means unbounded.
	MaxPollAttempts int `yaml:"max_poll_attempts" mapstructure:"max_poll_attempts" validate:"gte=0"`
	// PollTimeout caps the total polling time. Zero means unbounded.
	PollTimeout time.Duration `yaml:"poll_timeout" mapstructure:"poll_timeout" validate:"gte=0"`
	// Timeout bounds each HTTP request, including the audio upload.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DefaultConfig returns the defaults. PollTimeout is only set here, since
// zero is a meaningful value for it.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		PollInterval: defaultPollInterval,
		PollTimeout:  defaultPollTimeout,
		Timeout:      defaultTimeout,
	}
}

// ApplyDefaults fills in zero-valued fields other than the poll ceilings.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks the poll ceilings.
func (c *Config) Validate() error {
	if c.MaxPollAttempts < 0 {
		return errors.New("assemblyai: max_poll_attempts must not be negative")
	}
	if c.PollTimeout < 0 {
		return errors.New("assemblyai: poll_timeout must not be negative")
	}
	return nil
}
