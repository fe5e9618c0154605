package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the web server settings. Flags may override any field after
// loading.
type Config struct {
	Addr        string `yaml:"addr"`         // listen address
	PersistPath string `yaml:"persist_path"` // puzzle save directory
	LogLevel    string `yaml:"log_level"`    // debug|info|warn|error
	BoardSize   int    `yaml:"board_size"`   // default generated board side, even
}

// Default returns the built-in settings used when no config file is given.
func Default() *Config {
	return &Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		BoardSize:   6,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize checks cross-field consistency.
func (c *Config) Finalize() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	if c.BoardSize < 4 || c.BoardSize%2 != 0 {
		return fmt.Errorf("config: board_size must be even and at least 4, got %d", c.BoardSize)
	}
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	return nil
}
