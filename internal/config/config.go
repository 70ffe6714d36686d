package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/perfreport/internal/report"
)

// DefaultPath is where configuration is looked up when --config is not given
const DefaultPath = ".perfreport/config.yaml"

// HistoryConfig controls the finalize-run history database
type HistoryConfig struct {
	// Enabled records each successful finalize run
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`

	// Limit is the default number of rows shown by the history command
	Limit int `yaml:"limit"`
}

// Config represents perfreport configuration options
type Config struct {
	// SuccessMarker is the glyph counted in the results listing
	SuccessMarker string `yaml:"success_marker"`

	// AnchorHeading is the template line the analysis is inserted after
	AnchorHeading string `yaml:"anchor_heading"`

	// Lock holds an advisory lock on the report file during the rewrite
	Lock bool `yaml:"lock"`

	// History contains history database configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		SuccessMarker: report.DefaultSuccessMarker,
		AnchorHeading: report.DefaultAnchorHeading,
		Lock:          false,
		History: HistoryConfig{
			Enabled: true,
			DBPath:  ".perfreport/history.db",
			Limit:   20,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML over the defaults so absent keys keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that would make a finalize
// run meaningless rather than merely unusual.
func (c *Config) Validate() error {
	if c.SuccessMarker == "" {
		return fmt.Errorf("success_marker must not be empty")
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path must be set when history is enabled")
	}
	if c.History.Limit <= 0 {
		c.History.Limit = DefaultConfig().History.Limit
	}
	return nil
}
