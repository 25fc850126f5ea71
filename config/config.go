package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tigermax139/sportradar-sdk/sportradar"
)

// EnvPrefix is the prefix of environment overrides, e.g. SPORTRADAR_LOCALE.
const EnvPrefix = "SPORTRADAR"

// Load loads the configuration. The file is optional; every key has a default
// and can be overridden from the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".sportradar"))
		}
		v.AddConfigPath("/etc/sportradar/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the search paths may all be empty.
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("sport", "soccer")
	v.SetDefault("access_level", string(sportradar.Production))
	v.SetDefault("locale", sportradar.DefaultLocale)
	v.SetDefault("timeout", "30s")
	v.SetDefault("api_key", "")

	// Snapshot defaults
	v.SetDefault("snapshot.concurrency", 4)
	v.SetDefault("snapshot.operations", []string{"getCompetitions", "getSeasons", "getScheduleLiveSummaries"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("output.format", "json")
	v.SetDefault("update.repository", "tigermax139/sportradar-sdk")
}

// Validate checks the configuration again, e.g. after command-line overrides
func (c *Config) Validate() error {
	return validate(c)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if _, ok := sportradar.ResolveClientConstructor(cfg.Sport); !ok {
		return fmt.Errorf("%w: %q (known: %s)", sportradar.ErrUnknownSport, cfg.Sport, strings.Join(sportradar.Sports(), ", "))
	}

	if _, err := sportradar.ParseAccessLevel(cfg.AccessLevel); err != nil {
		return err
	}

	if !sportradar.IsSupportedLocale(cfg.Locale) {
		return fmt.Errorf("unsupported locale: %s", cfg.Locale)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	if cfg.Snapshot.Concurrency < 1 {
		return fmt.Errorf("snapshot.concurrency must be at least 1, got %d", cfg.Snapshot.Concurrency)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if cfg.Output.Format != "json" && cfg.Output.Format != "yaml" {
		return fmt.Errorf("invalid output.format: %s (must be 'json' or 'yaml')", cfg.Output.Format)
	}

	return nil
}
