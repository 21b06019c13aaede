package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		cfgFile = ""
	})
}

func TestInitConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	resetConfig(t)
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")

	initConfig()

	assert.Equal(t, "python3", cfg.Interpreter)
	assert.True(t, cfg.AutoRefresh)
	assert.Equal(t, 67, cfg.Cipher.Key)
}

func TestInitConfig_ReadsConfigFile(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"interpreter: python3.12\ncipher:\n  key: 7\n"), 0o644))
	cfgFile = path

	initConfig()

	assert.Equal(t, "python3.12", cfg.Interpreter)
	assert.Equal(t, 7, cfg.Cipher.Key)
	// unspecified keys keep their defaults
	assert.True(t, cfg.UI.ShowLineNumbers)
}

func TestInitConfig_InvalidValuesFallBackToDefaults(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cipher:\n  key: 999\n"), 0o644))
	cfgFile = path

	initConfig()

	assert.Equal(t, 67, cfg.Cipher.Key)
	assert.Equal(t, "python3", cfg.Interpreter)
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}
