package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[publish]
bucket = "crown-catalog"
prefix = "catalog"
region = "eu-west-1"
`), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "crown-catalog", cfg.Publish.Bucket)
	assert.Equal(t, "catalog", cfg.Publish.Prefix)
	assert.Equal(t, "eu-west-1", cfg.Publish.Region)
	assert.Empty(t, cfg.Publish.Endpoint)
}

func TestLoadConfig_MissingFileIsZeroConfig(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "nope.toml")
	defer func() { configPath = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Publish.Bucket)
}

func TestLoadConfig_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[publish`), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	_, err := loadConfig()
	assert.Error(t, err)
}
