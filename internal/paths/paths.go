package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const storeDirName = ".terminal-todo"

var goos = runtime.GOOS

// DefaultStoreDir returns the default directory for the todo file:
// %AppData%\.terminal-todo on Windows, ~/.terminal-todo elsewhere.
func DefaultStoreDir() (string, error) {
	if goos == "windows" {
		appData := os.Getenv("AppData")
		if appData == "" {
			return "", fmt.Errorf("AppData is not set")
		}
		return filepath.Join(appData, storeDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, storeDirName), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "terminal-todo", "config.toml"), nil
}

// ResolveWithDefault returns override when set, otherwise the result of defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultFn()
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
