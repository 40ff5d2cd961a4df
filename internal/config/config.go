// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"vidembed/internal/media"
	"vidembed/internal/provider"
)

// Config holds all application configuration.
type Config struct {
	Width      string   `toml:"width"`
	Height     string   `toml:"height"`
	Fullscreen bool     `toml:"fullscreen"`
	Providers  []string `toml:"providers"`
	LogLevel   string   `toml:"log_level"`
	LogFormat  string   `toml:"log_format"`
	Debug      bool     `toml:"debug"`
}

var dimensionPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Width:      media.DefaultWidth,
		Height:     media.DefaultHeight,
		Fullscreen: false,
		Providers:  provider.Default().Names(),
		LogLevel:   "warn",
		LogFormat:  "text",
		Debug:      false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vidembed"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vidembed"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if !dimensionPattern.MatchString(c.Width) {
		return fmt.Errorf("width must be a whole number of pixels, got %q", c.Width)
	}
	if !dimensionPattern.MatchString(c.Height) {
		return fmt.Errorf("height must be a whole number of pixels, got %q", c.Height)
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be enabled")
	}
	if _, err := provider.Default().Subset(c.Providers); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q (valid: text, json)", c.LogFormat)
	}

	return nil
}

// Registry returns the built-in provider registry narrowed to the
// enabled providers.
func (c *Config) Registry() (*provider.Registry, error) {
	return provider.Default().Subset(c.Providers)
}

// Request returns an empty dialog request seeded with the configured
// dimensions and fullscreen default.
func (c *Config) Request(url string) media.EmbedRequest {
	return media.EmbedRequest{
		URL:        url,
		Width:      c.Width,
		Height:     c.Height,
		Fullscreen: c.Fullscreen,
		Options:    media.FormValues{},
	}
}
