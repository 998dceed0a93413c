// Package config holds overlord configuration: where the location listing
// lives, where the mission journal is stored, the shared relay key, and
// logging settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all overlord configuration.
type Config struct {
	// SharedKey is the opaque symmetric key handed to ciphers on the relay
	// path. Never validated here.
	SharedKey string `yaml:"shared_key"`

	Listing ListingConfig `yaml:"listing"`
	Journal JournalConfig `yaml:"journal"`
	Logging LoggingConfig `yaml:"logging"`
}

// ListingConfig locates the line-oriented location listing.
type ListingConfig struct {
	Path string `yaml:"path"`
}

// JournalConfig configures the mission journal store.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means stderr
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Listing: ListingConfig{
			Path: "tmp/listings.csv",
		},
		Journal: JournalConfig{
			Path: "data/overlord.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OVERLORD_SHARED_KEY"); key != "" {
		c.SharedKey = key
	}
	if path := os.Getenv("OVERLORD_LISTING"); path != "" {
		c.Listing.Path = path
	}
	if path := os.Getenv("OVERLORD_DB"); path != "" {
		c.Journal.Path = path
	}
	if level := os.Getenv("OVERLORD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
