package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"jsonlscope/internal/domain"
)

// Environment variables read by Load
const (
	EnvConfig    = "JSONLSCOPE_CONFIG"
	EnvListLabel = "JSONLSCOPE_LIST_LABEL"
	EnvDebug     = "JSONLSCOPE_DEBUG"
	EnvNoColor   = "JSONLSCOPE_NO_COLOR"
)

// Config holds the user settings shared by the CLI and the MCP server
type Config struct {
	ListLabel string `yaml:"list_label"`
	Debug     bool   `yaml:"debug"`
	NoColor   bool   `yaml:"no_color"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{ListLabel: domain.DefaultListLabel}
}

// Load returns the defaults overridden by the config file, then by the environment.
// A missing config file is not an error.
func Load() (Config, error) {
	cfg := Default()

	if err := LoadFile(FilePath(), &cfg); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FilePath returns the config file location from JSONLSCOPE_CONFIG,
// falling back to $XDG_CONFIG_HOME/jsonlscope/config.yaml
func FilePath() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "jsonlscope", "config.yaml")
}

// LoadFile merges the YAML file at path into cfg.
// Keys absent from the file leave cfg untouched.
func LoadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ListLabel == "" {
		cfg.ListLabel = domain.DefaultListLabel
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvListLabel); v != "" {
		cfg.ListLabel = v
	}

	for name, target := range map[string]*bool{
		EnvDebug:   &cfg.Debug,
		EnvNoColor: &cfg.NoColor,
	} {
		raw := getenv(name)
		if raw == "" {
			continue
		}
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", name, raw, err)
		}
		*target = b
	}

	// NO_COLOR (https://no-color.org) disables styling when set to anything
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return nil
}
