// Package config provides configuration loading for the provenum tool.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ml4j/enums/internal/provider"
)

// Config represents the provenum configuration.
type Config struct {
	// Catalog is the path of a YAML catalog (empty = built-in activation catalog)
	Catalog string `yaml:"catalog"`
	// Providers lists the providers whose enum types are linked into the
	// type registry; references to other providers stay unresolvable
	Providers []string `yaml:"providers"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// linkable are the providers whose enum types ship with this module.
var linkable = map[provider.Provider]bool{
	provider.ML4J: true,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog:   "",
		Providers: []string{string(provider.ML4J)},
		LogLevel:  "info",
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	for _, p := range c.Providers {
		if !linkable[provider.Provider(p)] {
			return fmt.Errorf("providers: %q cannot be linked", p)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Merge overlays the non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Catalog != "" {
		c.Catalog = other.Catalog
	}
	if other.Providers != nil {
		c.Providers = other.Providers
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// SlogLevel returns LogLevel as a slog.Level, info when invalid.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// LinkedProviders returns Providers as provider names.
func (c *Config) LinkedProviders() []provider.Provider {
	out := make([]provider.Provider, 0, len(c.Providers))
	for _, p := range c.Providers {
		out = append(out, provider.Provider(p))
	}
	return out
}

// LoadFromFile loads a configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Load returns the defaults overlaid with the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level: unknown level %q", level)
	}
}
