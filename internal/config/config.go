package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// List output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// ListFormats lists every accepted list output format
var ListFormats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV}

// Config holds all configuration options for the task tracker
type Config struct {
	Store       StoreConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StoreConfig holds task file configuration
type StoreConfig struct {
	Backend         string      `env:"TASK_CLI_BACKEND"`
	Dir             string      `env:"TASK_CLI_DIR"`
	File            string      `env:"TASK_CLI_FILE"`
	FilePermissions os.FileMode `env:"TASK_CLI_FILE_PERMISSIONS"`
}

// DisplayConfig holds output formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TASK_CLI_TIME_FORMAT"`
	ListFormat string `env:"TASK_CLI_LIST_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASK_CLI_TIMEOUT"`
	Verbose bool          `env:"TASK_CLI_VERBOSE"`
}

// NewConfig creates a new configuration with defaults.
// The task file lives in the current directory.
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:         BackendJSON,
			Dir:             ".",
			FilePermissions: 0644,
		},
		Display: DisplayConfig{
			TimeFormat: time.RFC3339,
			ListFormat: FormatText,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoreFile returns the store file name, falling back to the backend default
func (c *Config) GetStoreFile() string {
	if c.Store.File != "" {
		return c.Store.File
	}
	if c.Store.Backend == BackendSQLite {
		return "tasks.db"
	}
	return "tasks.json"
}

// GetStorePath returns the full path to the store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.GetStoreFile())
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse keep their previous setting.
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if backend := os.Getenv("TASK_CLI_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if dir := os.Getenv("TASK_CLI_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if file := os.Getenv("TASK_CLI_FILE"); file != "" {
		c.Store.File = file
	}
	if perms := os.Getenv("TASK_CLI_FILE_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Store.FilePermissions = os.FileMode(p)
		}
	}

	// Display configuration
	if format := os.Getenv("TASK_CLI_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("TASK_CLI_LIST_FORMAT"); format != "" {
		c.Display.ListFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TASK_CLI_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TASK_CLI_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be json or sqlite"}
	}
	if c.Store.Dir == "" {
		return &ConfigError{Field: "store.dir", Message: "store directory cannot be empty"}
	}
	if c.Store.FilePermissions == 0 || c.Store.FilePermissions&^os.ModePerm != 0 {
		return &ConfigError{Field: "store.file_permissions", Message: "file permissions must be an octal mode between 0001 and 0777"}
	}
	if c.Store.FilePermissions&0600 != 0600 {
		return &ConfigError{Field: "store.file_permissions", Message: "file permissions must allow the owner to read and write"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if !IsListFormat(c.Display.ListFormat) {
		return &ConfigError{Field: "display.list_format", Message: "list format must be one of text, json, yaml, csv"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// IsListFormat reports whether format names a supported list output format
func IsListFormat(format string) bool {
	for _, f := range ListFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
