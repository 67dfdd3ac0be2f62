package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
source = "/downloads/complete"
destination = "/media"
dry_run = true

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/downloads/complete", cfg.Source)
	assert.Equal(t, "/media", cfg.Destination)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, filepath.Join("/media", "TV"), cfg.TVRoot())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `source = "/downloads"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.DryRun)
	assert.Empty(t, cfg.Destination)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("FILESORTER_TEST_SRC", "/mnt/downloads")
	path := writeConfig(t, `
source = "${FILESORTER_TEST_SRC}"
destination = "${FILESORTER_TEST_DEST_UNSET:-/srv/media}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/downloads", cfg.Source)
	assert.Equal(t, "/srv/media", cfg.Destination)
}

func TestLoad_MissingEnv(t *testing.T) {
	path := writeConfig(t, `source = "${FILESORTER_TEST_NEVER_SET}"`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %T", err)
	assert.Equal(t, path, cfgErr.Path)
	assert.Equal(t, []string{"FILESORTER_TEST_NEVER_SET"}, cfgErr.Missing)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
source = "/downloads"
desitnation = "/media"
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %T", err)
	assert.Equal(t, []string{"desitnation"}, cfgErr.Unknown)
	assert.Contains(t, err.Error(), "unknown keys: desitnation")
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, `source = `)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_DefaultConfigParses(t *testing.T) {
	t.Setenv("FILESORTER_SOURCE", "/in")
	t.Setenv("FILESORTER_DEST", "/out")
	path := writeConfig(t, defaultConfig)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/in", cfg.Source)
	assert.Equal(t, "/out", cfg.Destination)
	assert.Equal(t, "info", cfg.Log.Level)
}
