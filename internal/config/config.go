// Package config provides configuration types and defaults for aoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/zjrosen/aoc/internal/log"
)

// Output color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FirstYear is the first Advent of Code event.
const FirstYear = 2015

// Config holds all configuration options for aoc.
type Config struct {
	Year     int          `mapstructure:"year"`
	Title    string       `mapstructure:"title"`
	Author   string       `mapstructure:"author"`
	URL      string       `mapstructure:"url"`
	CacheDir string       `mapstructure:"cache_dir"` // base dir; inputs live in <cache_dir>/aoc/<year>/<day>
	Output   OutputConfig `mapstructure:"output"`
	Theme    ThemeConfig  `mapstructure:"theme"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Color  string `mapstructure:"color"`  // "auto" (default), "always" or "never"
	Format string `mapstructure:"format"` // "text" (default), "json" or "yaml"
}

// ThemeConfig holds the colors of the status glyphs.
type ThemeConfig struct {
	Success string `mapstructure:"success"` // hex color e.g. "#10B981"
	Failure string `mapstructure:"failure"`
	Unknown string `mapstructure:"unknown"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Output: OutputConfig{
			Color:  ColorAuto,
			Format: FormatText,
		},
		Theme: ThemeConfig{
			Success: "#10B981",
			Failure: "#EF4444",
			Unknown: "#F59E0B",
		},
	}
}

// Validate checks the configuration for invalid values.
func Validate(c Config) error {
	if c.Year != 0 && c.Year < FirstYear {
		return fmt.Errorf("year %d: must be %d or later", c.Year, FirstYear)
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	return ValidateTheme(c.Theme)
}

// ValidateOutput checks the color mode and output format.
func ValidateOutput(o OutputConfig) error {
	switch o.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color %q: must be one of auto, always, never", o.Color)
	}
	switch o.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format %q: must be one of text, json, yaml", o.Format)
	}
	return nil
}

// ValidateTheme checks that every set theme color is a hex color.
func ValidateTheme(t ThemeConfig) error {
	for name, v := range map[string]string{"success": t.Success, "failure": t.Failure, "unknown": t.Unknown} {
		if v != "" && !hexColor.MatchString(v) {
			return fmt.Errorf("theme.%s %q: invalid hex color", name, v)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# aoc configuration

# Event year; used for the title and the input cache layout
# year: 2022

# title: AoC 2022
# author: you
# url: https://github.com/you/advent

# Base directory for cached puzzle inputs (default: user cache dir)
# Inputs are read from <cache_dir>/aoc/<year>/<day>/input.txt
# cache_dir: ~/.cache

output:
  color: auto    # auto, always or never
  format: text   # text, json or yaml

# Status glyph colors
theme:
  success: "#10B981"
  failure: "#EF4444"
  unknown: "#F59E0B"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
