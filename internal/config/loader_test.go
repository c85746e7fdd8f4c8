package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Setenv("TASK_CLI_DIR", t.TempDir())

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Store.Backend)
}

func TestLoader_LoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("TASK_CLI_BACKEND", "mongo")

	_, err := NewLoader().Load()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "store.backend", cfgErr.Field)
}

func TestLoader_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TASK_CLI_DIR", "from-env")
	t.Setenv("TASK_CLI_LIST_FORMAT", "csv")

	dir := "from-flag"
	timeout := time.Second
	verbose := true
	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Dir:     &dir,
		Timeout: &timeout,
		Verbose: &verbose,
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Store.Dir)
	assert.Equal(t, FormatCSV, cfg.Display.ListFormat, "unset overrides keep the environment value")
	assert.Equal(t, time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_OverridesAreValidated(t *testing.T) {
	format := "xml"
	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{ListFormat: &format})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "display.list_format", cfgErr.Field)
}

func TestLoader_NilOverrides(t *testing.T) {
	cfg, err := NewLoader().LoadWithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Store.Dir)
}

func TestLoadDotenv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TASK_CLI_LIST_FORMAT=json\nTASK_CLI_TIME_FORMAT=15:04\n"), 0600))

	// restored after the test, unset during it so the file value applies
	t.Setenv("TASK_CLI_LIST_FORMAT", "")
	require.NoError(t, os.Unsetenv("TASK_CLI_LIST_FORMAT"))
	t.Setenv("TASK_CLI_TIME_FORMAT", "2006")

	require.NoError(t, LoadDotenv(envFile))

	assert.Equal(t, "json", os.Getenv("TASK_CLI_LIST_FORMAT"))
	assert.Equal(t, "2006", os.Getenv("TASK_CLI_TIME_FORMAT"), "existing variables win")
}

func TestLoadDotenv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotenv_Malformed(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BAD-KEY=1\n"), 0600))

	err := LoadDotenv(envFile)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "dotenv", cfgErr.Field)
}
