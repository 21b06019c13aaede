// Package paths provides path resolution utilities for slate's
// configuration and state files.
package paths

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the directory slate reads its config from.
// A .slate directory in the working directory takes precedence over
// the per-user location so projects can ship their own settings.
func ConfigDir() string {
	if info, err := os.Stat(".slate"); err == nil && info.IsDir() {
		return ".slate"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slate"
	}
	return filepath.Join(home, ".config", "slate")
}

// StateDir returns the directory for mutable state (session file, run
// history database). Honors XDG_STATE_HOME, defaulting to
// ~/.local/state/slate.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "slate")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slate"
	}
	return filepath.Join(home, ".local", "state", "slate")
}

// SessionFile returns the path of the session state JSON file.
func SessionFile() string {
	return filepath.Join(StateDir(), "session.json")
}

// HistoryDB returns the path of the run history SQLite database.
func HistoryDB() string {
	return filepath.Join(StateDir(), "history.db")
}

// EnsureStateDir creates the state directory if it does not exist.
func EnsureStateDir() error {
	return os.MkdirAll(StateDir(), 0o750)
}
