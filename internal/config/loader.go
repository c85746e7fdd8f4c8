package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables (a .env file is read by LoadDotenv beforehand)
// 3. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(l.config)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides.
// A nil field leaves the setting untouched.
type ConfigOverrides struct {
	// Store overrides
	Backend *string
	Dir     *string
	File    *string

	// Display overrides
	TimeFormat *string
	ListFormat *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.Backend != nil {
		config.Store.Backend = *o.Backend
	}
	if o.Dir != nil {
		config.Store.Dir = *o.Dir
	}
	if o.File != nil {
		config.Store.File = *o.File
	}

	if o.TimeFormat != nil {
		config.Display.TimeFormat = *o.TimeFormat
	}
	if o.ListFormat != nil {
		config.Display.ListFormat = *o.ListFormat
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}

// LoadDotenv reads KEY=VALUE pairs from the given files (".env" when none are named)
// into the process environment. Variables that are already set win.
// A missing file is not an error.
func LoadDotenv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &ConfigError{Field: "dotenv", Message: err.Error()}
		}
	}
	return nil
}
