package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "python3", cfg.Interpreter)
	assert.True(t, cfg.AutoRefresh)
	assert.True(t, cfg.UI.ShowStatusBar)
	assert.True(t, cfg.UI.ShowLineNumbers)
	assert.False(t, cfg.UI.ShowHiddenFiles)
	assert.Equal(t, 67, cfg.Cipher.Key)
	assert.Zero(t, cfg.Run.TimeoutSeconds)
	assert.Empty(t, cfg.Keywords)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))

	cfg.Cipher.Key = 256
	require.Error(t, Validate(cfg))

	cfg = Defaults()
	cfg.Cipher.Key = -1
	require.Error(t, Validate(cfg))

	cfg = Defaults()
	cfg.Run.TimeoutSeconds = -5
	require.Error(t, Validate(cfg))
}

func TestDefaultConfigTemplate_IsValidYAML(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))

	assert.Equal(t, "python3", parsed["interpreter"])
	assert.Equal(t, true, parsed["auto_refresh"])

	cipher, ok := parsed["cipher"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 67, cipher["key"])
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "interpreter: python3")
}

func TestSaveThemePreset_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := `# my precious comment
interpreter: python3

theme:
  preset: default
`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	require.NoError(t, SaveThemePreset(path, "midnight"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# my precious comment")
	assert.Contains(t, content, "midnight")
	assert.NotContains(t, content, "preset: default")

	var cfg struct {
		Theme struct {
			Preset string `yaml:"preset"`
		} `yaml:"theme"`
	}
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "midnight", cfg.Theme.Preset)
}

func TestSaveThemePreset_MissingFileCreatesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveThemePreset(path, "light"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "light"))
}

func TestSaveThemePreset_AppendsThemeSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interpreter: python3\n"), 0o600))

	require.NoError(t, SaveThemePreset(path, "high-contrast"))

	var cfg struct {
		Interpreter string `yaml:"interpreter"`
		Theme       struct {
			Preset string `yaml:"preset"`
		} `yaml:"theme"`
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "python3", cfg.Interpreter)
	assert.Equal(t, "high-contrast", cfg.Theme.Preset)
}
