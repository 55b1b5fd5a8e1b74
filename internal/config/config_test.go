package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "encscan.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Progress)
	assert.False(t, cfg.Summary)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
verbose = true
color = "never"
summary = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.Summary)
	assert.False(t, cfg.Progress)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, "progress = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Progress)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "threshold = 127\n")

	_, err := Load(path)
	require.Error(t, err)
	var strict *toml.StrictMissingError
	assert.ErrorAs(t, err, &strict)
}

func TestLoad_InvalidColor(t *testing.T) {
	path := writeConfig(t, `color = "rainbow"`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "verbose = \n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
