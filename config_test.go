package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "quiz.db", cfg.Database.Path)
	assert.Equal(t, "data", cfg.Catalog.Dir)
}

func TestLoadConfigYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  port: \"9000\"\ncatalog:\n  dir: catalog-data\n"), 0o644))

	t.Setenv("PORT", "9001")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9001", cfg.Server.Port, "env beats yaml")
	assert.Equal(t, "catalog-data", cfg.Catalog.Dir)
	assert.Equal(t, "quiz.db", cfg.Database.Path, "default survives")
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
