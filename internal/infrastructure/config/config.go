// Package config loads inspector settings from defaults, an optional
// config file and the environment, in that order of increasing
// priority.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Output formats the CLI can render.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config holds the inspector's presentation settings.
type Config struct {
	// Output selects the default rendering format for list/export.
	Output string `json:"output"`

	// NoColor disables styled terminal output. The NO_COLOR
	// environment variable also sets it, per convention.
	NoColor bool `json:"no_color"`

	// Verbose enables diagnostic logging.
	Verbose bool `json:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Output: OutputTable}
}

// Load resolves the effective configuration. A missing config file is
// not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := defaultPath()
	if err == nil {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	loadEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (want table, json or yaml)", c.Output)
	}
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "retroabi", "config.json"), nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("RETROABI_OUTPUT")); v != "" {
		cfg.Output = strings.ToLower(v)
	}
	if v := os.Getenv("RETROABI_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}
