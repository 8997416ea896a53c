package todoenv

import (
	"os"
	"strings"
)

// StoreDirEnvVar is the environment variable that overrides the todo file directory.
const StoreDirEnvVar = "TODO_DB"

// StoreDir returns the directory named by the environment, or "" when unset.
func StoreDir() string {
	return strings.TrimSpace(os.Getenv(StoreDirEnvVar))
}
