// Package config holds scour configuration: search defaults and logging,
// loaded from an optional YAML file with environment overrides. CLI flags
// take final precedence in the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig carries scan defaults.
type SearchConfig struct {
	// Workers is the default worker count; 0 means detected CPU
	// parallelism.
	Workers int `yaml:"workers"`
	// Pattern is the default base-name glob for candidate files.
	Pattern string `yaml:"pattern"`
	// Mode is the default concurrency model: "isolated" or "shared".
	Mode string `yaml:"mode"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Workers: 0,
			Pattern: "*.txt",
			Mode:    "isolated",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML config at path, layering it over the defaults and
// then applying environment overrides. A missing file is not an error; the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets the environment override file values. Malformed
// values are ignored rather than fatal.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SCOUR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.Workers = n
		}
	}
	if v := os.Getenv("SCOUR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
