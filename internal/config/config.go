// Package config manages the goal tracker configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"goaltrack/internal/storage"
)

const (
	EnvHome     = "GOALTRACK_HOME"
	EnvFile     = "GOALTRACK_FILE"
	EnvLogLevel = "GOALTRACK_LOG_LEVEL"

	fileName = "config.toml"
)

// Config holds all tracker configuration.
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Journal JournalConfig `toml:"journal"`
	Logging LoggingConfig `toml:"logging"`
}

// StoreConfig locates the goal document. A .yaml/.yml path selects YAML.
type StoreConfig struct {
	Path string `toml:"path"`
}

// JournalConfig controls the SQLite event journal.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LoggingConfig controls diagnostics. An empty file logs to stderr.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func DefaultConfig() Config {
	docPath, err := storage.DefaultDocumentPath()
	if err != nil {
		docPath = ".goal_tracker.json"
	}
	return Config{
		Store: StoreConfig{
			Path: docPath,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    storage.DefaultJournalPath(Home()),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath is config.toml inside Home.
func DefaultPath() string {
	return filepath.Join(Home(), fileName)
}

// LoadConfig reads path (DefaultPath when empty), falling back to defaults
// when the file does not exist, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("stat config %s: %w", path, err)
	}

	applyEnv(&cfg)
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Journal.Path = expandHome(cfg.Journal.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	return cfg, nil
}

// SaveConfig writes cfg to path (DefaultPath when empty).
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Home returns the tracker data directory.
func Home() string {
	if env := os.Getenv(EnvHome); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".goaltrack")
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvFile)); v != "" {
		cfg.Store.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
