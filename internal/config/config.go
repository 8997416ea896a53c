// Package config handles loading the terminal-todo config.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/terminal-todo/internal/strings"
)

const (
	// DefaultListFormat is used when [list] format is not set.
	DefaultListFormat = "detail"

	// DefaultListWidth is used when [list] width is not set. Zero disables
	// description wrapping.
	DefaultListWidth = 0

	// DefaultLogLevel is used when [log] level is not set.
	DefaultLogLevel = "warn"
)

// Config represents the config.toml file.
type Config struct {
	Store Store `toml:"store"`
	List  List  `toml:"list"`
	Log   Log   `toml:"log"`
}

// Store contains storage configuration.
type Store struct {
	// Dir is the directory holding the todo file. The TODO_DB environment
	// variable takes precedence. A leading ~/ expands to the home directory.
	Dir string `toml:"dir"`
}

// List contains list rendering configuration.
type List struct {
	// Format is "detail" or "table".
	Format string `toml:"format"`

	// Width wraps descriptions in the detail format when set.
	Width int `toml:"width"`
}

// Log contains diagnostic logging configuration.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		List: List{Format: DefaultListFormat, Width: DefaultListWidth},
		Log:  Log{Level: DefaultLogLevel},
	}
}

// Load loads configuration from path.
// Returns the default config if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	merged, err := applyDefaults(&cfg, meta)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return merged, nil
}

func applyDefaults(cfg *Config, meta toml.MetaData) (*Config, error) {
	merged := Default()

	dir, err := expandHome(strings.TrimSpace(cfg.Store.Dir))
	if err != nil {
		return nil, err
	}
	merged.Store.Dir = dir

	if meta.IsDefined("list", "format") {
		merged.List.Format = internalstrings.NormalizeLowerTrimSpace(cfg.List.Format)
	}
	if meta.IsDefined("list", "width") {
		if cfg.List.Width <= 0 {
			return nil, fmt.Errorf("list width must be positive, got %d", cfg.List.Width)
		}
		merged.List.Width = cfg.List.Width
	}
	if meta.IsDefined("log", "level") {
		merged.Log.Level = internalstrings.NormalizeLowerTrimSpace(cfg.Log.Level)
	}

	return merged, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
