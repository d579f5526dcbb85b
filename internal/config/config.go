// Package config holds runtime configuration: defaults, the optional TOML
// config file, CLI flag parsing, and validation. Precedence is flags over
// config file over built-in defaults.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// layered by the config file, and then mutated by [ParseFlags] before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir         string // Set from the positional arg.
	ProcessedDirName string // Default: "processed". Sibling dir accepted files move into.

	// External tool.
	ExiftoolBin string // Default: "exiftool" (resolved via PATH).

	// Behavior flags.
	DryRun  bool // Preview only; no metadata written, no files moved.
	Watch   bool // Keep running and process files as they appear.
	ShowTag bool // Default: true. Log each written tag per file.

	// Display and logging.
	Verbose     bool
	ColorMode   ColorMode // Default: "auto".
	LogFile     string    // Optional log file path.
	CheckOnly   bool      // Run --check diagnostics and exit.
	AnalyzeOnly bool      // Run --analyze report and exit.

	// Config file path. Empty means look for ./humpyard.toml.
	ConfigFile string
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the file and flag layers apply overrides.
func DefaultConfig() Config {
	return Config{
		ProcessedDirName: "processed",
		ExiftoolBin:      "exiftool",
		ShowTag:          true,
		ColorMode:        ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that required
// paths are present for the selected mode.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ProcessedDirName == "" ||
		strings.ContainsAny(c.ProcessedDirName, "/\\") {
		return errors.New("processed dir must be a bare directory name")
	}

	if c.ExiftoolBin == "" {
		return errors.New("exiftool binary must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input_dir")
	}
	return nil
}
