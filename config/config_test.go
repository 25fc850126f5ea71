package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		Sport:       "soccer",
		AccessLevel: "trial",
		Locale:      "en",
		Timeout:     30 * time.Second,
		Snapshot:    SnapshotConfig{Concurrency: 2},
		Logging:     LoggingConfig{Level: "info", Format: "console"},
		Output:      OutputConfig{Format: "json"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "soccer", cfg.Sport)
	assert.Equal(t, "production", cfg.AccessLevel)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 4, cfg.Snapshot.Concurrency)
	assert.Equal(t, []string{"getCompetitions", "getSeasons", "getScheduleLiveSummaries"}, cfg.Snapshot.Operations)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "tigermax139/sportradar-sdk", cfg.Update.Repository)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
sport: basketball
access_level: trial
locale: de
timeout: 5s
snapshot:
  concurrency: 8
  operations:
    - getCompetitions
logging:
  level: debug
  format: json
output:
  format: yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "basketball", cfg.Sport)
	assert.Equal(t, "trial", cfg.AccessLevel)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 8, cfg.Snapshot.Concurrency)
	assert.Equal(t, []string{"getCompetitions"}, cfg.Snapshot.Operations)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SPORTRADAR_LOCALE", "fr")
	t.Setenv("SPORTRADAR_LOGGING_LEVEL", "warn")
	t.Setenv("SPORTRADAR_API_KEY", "from-env")

	cfg, err := Load(writeConfig(t, "locale: de\n"))
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "sport: cricket\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "unknown sport")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "football alias", mutate: func(c *Config) { c.Sport = "Football" }},
		{name: "empty access level", mutate: func(c *Config) { c.AccessLevel = "" }},
		{name: "unknown sport", mutate: func(c *Config) { c.Sport = "cricket" }, errContains: "unknown sport"},
		{name: "bad access level", mutate: func(c *Config) { c.AccessLevel = "staging" }, errContains: "invalid access level"},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "xx" }, errContains: "unsupported locale"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, errContains: "timeout must be positive"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Snapshot.Concurrency = 0 }, errContains: "snapshot.concurrency"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, errContains: "invalid logging level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, errContains: "invalid logging format"},
		{name: "bad output format", mutate: func(c *Config) { c.Output.Format = "csv" }, errContains: "invalid output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestConfig_ValidateAfterChange(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Locale = "xx"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}
