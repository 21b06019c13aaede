// Package session persists editor state between launches: the JSON
// session file restored at startup and the SQLite run history.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"slate/internal/log"
)

// State is what survives a restart. Missing or malformed state files
// degrade to defaults; loading never fails the application.
type State struct {
	OpenFiles    []string `json:"open_files"`
	CurrentTheme string   `json:"current_theme"`
	LastDir      string   `json:"last_dir"`
}

// DefaultState returns the state used when no session file exists.
func DefaultState() State {
	return State{OpenFiles: []string{}}
}

// LoadState reads the session file at path. A missing or malformed
// file yields defaults.
func LoadState(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn(log.CatSession, "Failed to read session file", "path", path, "error", err)
		}
		return DefaultState()
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn(log.CatSession, "Malformed session file, using defaults", "path", path, "error", err)
		return DefaultState()
	}
	if s.OpenFiles == nil {
		s.OpenFiles = []string{}
	}
	return s
}

// SaveState writes the session file atomically (temp file + rename).
func SaveState(path string, s State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".session.json.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Debug(log.CatSession, "Session state saved", "path", path, "openFiles", len(s.OpenFiles))
	return nil
}
