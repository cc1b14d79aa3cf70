// Package fs provides default file locations for madlibs.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultLogPath returns the default log file for madlibs.
// Uses XDG_STATE_HOME if set, otherwise falls back to ~/.local/state/madlibs,
// or system temp directory if home is unavailable.
func DefaultLogPath() string {
	return filepath.Join(stateDir(), "madlibs.log")
}

func stateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "madlibs")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "madlibs")
	}
	return filepath.Join(home, ".local", "state", "madlibs")
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
