package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// StateDir is ~/.jer, the parent of the config file and run history.
func StateDir(elem ...string) string {
	return filepath.Join(append([]string{UserHomeDir(), ".jer"}, elem...)...)
}
