// Package config holds the converter's configurable settings: an
// optional YAML file with CLI flags layered on top.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and batch settings.
type Config struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	Pattern   string `yaml:"pattern"`
	Workers   int    `yaml:"workers"`

	Logging Logging `yaml:"logging"`
}

// Logging configures the zap logger.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Pattern: "*.json",
		Workers: runtime.NumCPU(),
		Logging: Logging{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Pattern   string
	Workers   int
	LogLevel  string
	LogFile   string
}

// Resolve layers non-zero CLI flags over the config and fills in any
// remaining gaps with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		c.Logging.File = flags.LogFile
	}

	if c.Pattern == "" {
		c.Pattern = "*.json"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
