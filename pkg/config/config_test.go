package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "rateconv", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "rateconv", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("app:\n  name: fx-sim\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "fx-sim", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o644))
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	assert.ErrorContains(t, err, "read config")
}
