// Package config handles loading, validating, and overriding assetgen
// settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bagtoad/assetgen/internal/output"
	"github.com/bagtoad/assetgen/internal/typeface"
)

// DefaultPath is the config file looked up when none is named explicitly.
const DefaultPath = "assetgen.yaml"

// Config is the top-level assetgen configuration.
type Config struct {
	Output   OutputConfig `yaml:"output"   mapstructure:"output"`
	Font     FontConfig   `yaml:"font"     mapstructure:"font"`
	Manifest string       `yaml:"manifest" mapstructure:"manifest"`
	Jobs     int          `yaml:"jobs"     mapstructure:"jobs"` // 0 picks one per available CPU
}

// OutputConfig controls where and how assets are written.
type OutputConfig struct {
	Dir     string `yaml:"dir"     mapstructure:"dir"`
	Format  string `yaml:"format"  mapstructure:"format"`
	Quality int    `yaml:"quality" mapstructure:"quality"`
}

// FontConfig names the TrueType font used for labels.
type FontConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// Default returns a Config that reproduces the stock asset set.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:     "assets",
			Format:  output.JPEG.String(),
			Quality: output.DefaultQuality,
		},
		Font: FontConfig{
			Path: typeface.DefaultPath,
		},
		Jobs: 1,
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and returns
// a Config with defaults applied first and file values overlaid on top.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "toml":
		v.SetConfigType("toml")
	default:
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when configPath
// does not exist.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(configPath)
}

// Validate checks the Config for common errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("config: output.dir is required")
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("config: output.format: %w", err)
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("config: output.quality must be between 1 and 100 (got %d)", c.Output.Quality)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("config: jobs must not be negative (got %d)", c.Jobs)
	}
	return nil
}

// Format returns the parsed output format. It assumes Validate passed.
func (c *Config) Format() output.Format {
	f, _ := output.ParseFormat(c.Output.Format)
	return f
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is returned
// for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "out":
			if s, ok := val.(string); ok {
				c.Output.Dir = s
			}
		case "format":
			if s, ok := val.(string); ok {
				c.Output.Format = s
			}
		case "quality":
			if n, ok := val.(int); ok {
				c.Output.Quality = n
			}
		case "font":
			if s, ok := val.(string); ok {
				c.Font.Path = s
			}
		case "manifest":
			if s, ok := val.(string); ok {
				c.Manifest = s
			}
		case "jobs":
			if n, ok := val.(int); ok {
				c.Jobs = n
			}
		}
	}
	return c
}
