// Package config reads and writes the yt2reader configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"yt2reader/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Reader   ReaderConfig   `yaml:"reader"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Paths    PathsConfig    `yaml:"paths"`
}

// ReaderConfig holds the Reader API settings
type ReaderConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Location string `yaml:"location"`
}

// PathsConfig holds custom path overrides
type PathsConfig struct {
	Playlist string `yaml:"playlist"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Location: "new",
		},
	}
}

// AppDir returns the application directory (~/.yt2reader)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".yt2reader"
	}
	return filepath.Join(home, ".yt2reader")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// DefaultPlaylistPath returns where the working list is stored unless
// overridden in the config.
func DefaultPlaylistPath() string {
	return filepath.Join(AppDir(), "playlist.json")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	if err := os.MkdirAll(AppDir(), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", AppDir(), err)
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if !domain.ValidLocation(cfg.Defaults.Location) {
		return nil, fmt.Errorf("defaults.location %q: %w", cfg.Defaults.Location, domain.ErrInvalidLocation)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}

// PlaylistPath returns the configured playlist path, or the default.
func (c *Config) PlaylistPath() string {
	if c.Paths.Playlist != "" {
		return c.Paths.Playlist
	}
	return DefaultPlaylistPath()
}
