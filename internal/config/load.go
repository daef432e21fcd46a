package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/aoc/internal/log"
)

// LocalConfigPath is the project-local config file, relative to the working directory.
const LocalConfigPath = ".aoc/config.yaml"

// EnvPrefix prefixes environment overrides, e.g. AOC_CACHE_DIR or AOC_OUTPUT_COLOR.
const EnvPrefix = "AOC"

// UserConfigDir returns ~/.config/aoc or empty string if home dir unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aoc")
}

// NewViper returns a viper instance with defaults and env bindings applied.
func NewViper() *viper.Viper {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("year", defaults.Year)
	v.SetDefault("title", defaults.Title)
	v.SetDefault("author", defaults.Author)
	v.SetDefault("url", defaults.URL)
	v.SetDefault("cache_dir", defaults.CacheDir)
	v.SetDefault("output.color", defaults.Output.Color)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("theme.success", defaults.Theme.Success)
	v.SetDefault("theme.failure", defaults.Theme.Failure)
	v.SetDefault("theme.unknown", defaults.Theme.Unknown)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into a Config.
//
// Config lookup order:
//  1. cfgFile when non-empty (must exist)
//  2. .aoc/config.yaml (current directory)
//  3. ~/.config/aoc/config.yaml (user config)
//
// A missing config file is not an error; defaults and environment apply.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(LocalConfigPath); err == nil {
		v.SetConfigFile(LocalConfigPath)
	} else {
		if dir := UserConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "file", cfgFile)
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	} else {
		log.Info(log.CatConfig, "Loaded config", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
