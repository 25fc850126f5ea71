package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Sport       string         `mapstructure:"sport"`
	AccessLevel string         `mapstructure:"access_level"`
	Locale      string         `mapstructure:"locale"`
	Timeout     time.Duration  `mapstructure:"timeout"`
	APIKey      string         `mapstructure:"api_key"`
	Snapshot    SnapshotConfig `mapstructure:"snapshot"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Output      OutputConfig   `mapstructure:"output"`
	Update      UpdateConfig   `mapstructure:"update"`
}

// SnapshotConfig controls the snapshot command
type SnapshotConfig struct {
	Concurrency int      `mapstructure:"concurrency"`
	Operations  []string `mapstructure:"operations"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// OutputConfig selects how responses are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// UpdateConfig holds self-update settings
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
