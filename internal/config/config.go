// Package config loads the application configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Rashmi-kavindya/RubiksCube"
)

// dirName is the per-user directory holding config and journal.
const dirName = ".rubikscube"

// Config is the on-disk configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Shuffle  ShuffleConfig `yaml:"shuffle"`
	Journal  JournalConfig `yaml:"journal"`
	Server   ServerConfig  `yaml:"server"`
}

// ShuffleConfig selects what the shuffle action does.
type ShuffleConfig struct {
	Mode  string `yaml:"mode"`  // "tiles" or "moves"
	Moves int    `yaml:"moves"` // turns applied in "moves" mode
}

// JournalConfig controls the SQLite move journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Shuffle: ShuffleConfig{
			Mode:  string(rubikscube.ShuffleTiles),
			Moves: rubikscube.DefaultScrambleLength,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults.
// An empty path means DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.fillJournalPath()
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, cfg.fillJournalPath()
}

// Save writes the config to path, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch rubikscube.ShuffleMode(c.Shuffle.Mode) {
	case rubikscube.ShuffleTiles, rubikscube.ShuffleMoves:
	default:
		return fmt.Errorf("shuffle.mode must be %q or %q, got %q",
			rubikscube.ShuffleTiles, rubikscube.ShuffleMoves, c.Shuffle.Mode)
	}
	if c.Shuffle.Moves <= 0 {
		return fmt.Errorf("shuffle.moves must be positive, got %d", c.Shuffle.Moves)
	}
	return nil
}

// EngineOptions converts the shuffle settings to engine options.
func (c Config) EngineOptions() []rubikscube.Option {
	return []rubikscube.Option{
		rubikscube.WithShuffleMode(rubikscube.ShuffleMode(c.Shuffle.Mode)),
		rubikscube.WithScrambleLength(c.Shuffle.Moves),
	}
}

// fillJournalPath defaults and expands the journal path.
func (c *Config) fillJournalPath() error {
	if c.Journal.Path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.Journal.Path = filepath.Join(dir, "journal.db")
		return nil
	}
	if strings.HasPrefix(c.Journal.Path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Journal.Path = filepath.Join(home, c.Journal.Path[2:])
	}
	return nil
}
