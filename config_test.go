package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		cfg, err := loadConfig(writeTestConfig(t, "precision: 4\ncolor: never\n"))
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Precision)
		assert.Equal(t, "never", cfg.Color)
		assert.False(t, cfg.colorEnabled())
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		cfg, err := loadConfig(writeTestConfig(t, "color: always\n"))
		require.NoError(t, err)
		assert.Equal(t, -1, cfg.Precision)
		assert.True(t, cfg.colorEnabled())
	})

	t.Run("zero precision is honored", func(t *testing.T) {
		cfg, err := loadConfig(writeTestConfig(t, "precision: 0\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Precision)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml is an error", func(t *testing.T) {
		_, err := loadConfig(writeTestConfig(t, "precision: [\n"))
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("bad color mode is an error", func(t *testing.T) {
		_, err := loadConfig(writeTestConfig(t, "color: sometimes\n"))
		assert.ErrorContains(t, err, "color")
	})
}
