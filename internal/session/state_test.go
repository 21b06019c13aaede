package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadState_MissingFileUsesDefaults(t *testing.T) {
	s := LoadState(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, s.OpenFiles)
	assert.NotNil(t, s.OpenFiles)
	assert.Empty(t, s.CurrentTheme)
	assert.Empty(t, s.LastDir)
}

func TestLoadState_MalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := LoadState(path)
	assert.Equal(t, DefaultState(), s)
}

func TestSaveState_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	want := State{
		OpenFiles:    []string{"/tmp/a.py", "/tmp/b.py"},
		CurrentTheme: "midnight",
		LastDir:      "/tmp",
	}

	require.NoError(t, SaveState(path, want))
	got := LoadState(path)
	assert.Equal(t, want, got)
}

func TestSaveState_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, SaveState(path, State{CurrentTheme: "light"}))
	require.NoError(t, SaveState(path, State{CurrentTheme: "default"}))

	assert.Equal(t, "default", LoadState(path).CurrentTheme)
}
