// Package config holds the immutable settings of a single honeybee run.
//
// A Config is built once from defaults, an optional YAML file and the command
// line, validated, and then passed by value into the pipeline.
package config

import (
	"fmt"
	"strings"
)

// Config holds every setting a run needs.
type Config struct {
	// BFSStart enables the bounded-level traversal when non-empty.
	BFSStart string `yaml:"bfs"`

	// WalkStart enables the random walk when non-empty.
	WalkStart string `yaml:"random_walk"`

	// BFSRequested and WalkRequested are set when the mode flag was given,
	// so an explicit empty address still runs the mode.
	BFSRequested  bool `yaml:"-"`
	WalkRequested bool `yaml:"-"`

	// Levels is the traversal level budget. Negative behaves like 0.
	Levels int `yaml:"levels"`

	// Steps is the number of random walk moves.
	Steps int `yaml:"steps"`

	// Limit caps the suggestions printed per mode.
	Limit int `yaml:"limit"`

	// Seed makes walks reproducible. 0 draws fresh entropy.
	Seed uint64 `yaml:"seed"`

	// Input is the link pair file. Empty or "-" reads stdin.
	Input string `yaml:"input"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// MetricsPath, when set, receives a Prometheus textfile after the run.
	MetricsPath string `yaml:"metrics_path"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Levels:    5,
		Steps:     100,
		Limit:     5,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// BFSEnabled reports whether the traversal was requested.
func (c Config) BFSEnabled() bool {
	return c.BFSRequested || c.BFSStart != ""
}

// WalkEnabled reports whether the random walk was requested.
func (c Config) WalkEnabled() bool {
	return c.WalkRequested || c.WalkStart != ""
}

// ReadsStdin reports whether link pairs come from standard input.
func (c Config) ReadsStdin() bool {
	return c.Input == "" || c.Input == "-"
}

// Validate checks values that cannot be expressed by the flag types.
func (c Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
