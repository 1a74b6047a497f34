// Package config loads the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"hevyctl/internal/util"
)

// Config holds the file-sourced defaults. Every field is optional; flags
// and environment variables take precedence over all of them.
type Config struct {
	BaseURL  string        `yaml:"base_url"`
	APIKey   string        `yaml:"api_key"`
	PageSize int           `yaml:"page_size"`
	Output   string        `yaml:"output"` // "json" or "table"
	Logging  LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultPath returns the conventional config location, or "" when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hevyctl.yaml")
}

// Load reads and parses the file at path. explicit distinguishes a path
// the user asked for (missing file is an error) from the default location
// (missing file yields an empty config).
func Load(path string, explicit bool) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in '%s': %w", path, err)
	}

	// Values may reference environment variables, e.g. api_key: $HEVY_API_KEY.
	cfg.BaseURL = util.ExpandEnvUniversal(cfg.BaseURL)
	cfg.APIKey = util.ExpandEnvUniversal(cfg.APIKey)

	if err := validate(&cfg, path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config, path string) error {
	switch cfg.Output {
	case "", "json", "table":
	default:
		return fmt.Errorf("invalid output %q in '%s' (use json or table)", cfg.Output, path)
	}
	if cfg.PageSize < 0 {
		return fmt.Errorf("invalid page_size %d in '%s'", cfg.PageSize, path)
	}
	return nil
}
