package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slumbermc/slumber/internal/logger"
)

func TestLoad_ExistingFileWins(t *testing.T) {
	// Arrange: a valid file and a conflicting environment; the file must be
	// the only source consulted.
	p := writeConfigFile(t, `
[server]
command = "from-file.sh"
`)
	lookup := mapLookup(map[string]string{
		"SLUMBER_SERVER_COMMAND":   "from-env.sh",
		"SLUMBER_TIME_SLEEP_AFTER": "999",
	})

	// Act
	cfg, err := load(p, lookup, logger.Nop())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-file.sh", cfg.Server.Command)
	assert.Equal(t, uint32(60), cfg.Time.SleepAfter)

	path, ok := cfg.Path()
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(path))
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "does-not-exist.toml")
	lookup := mapLookup(map[string]string{
		"SLUMBER_SERVER_COMMAND": "from-env.sh",
	})
	var buf bytes.Buffer
	log := logger.New(&buf, "test")

	// Act
	cfg, err := load(p, lookup, log)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-env.sh", cfg.Server.Command)

	_, ok := cfg.Path()
	assert.False(t, ok)

	assert.Contains(t, buf.String(), "config file not found")
}

func TestLoad_DirectoryPathFallsBackToEnv(t *testing.T) {
	// A path naming a directory is not a configuration file.
	dir := t.TempDir()
	lookup := mapLookup(map[string]string{
		"SLUMBER_SERVER_COMMAND": "run.sh",
	})

	cfg, err := load(dir, lookup, logger.Nop())

	require.NoError(t, err)
	_, ok := cfg.Path()
	assert.False(t, ok)
}

func TestLoad_RelativePathIsCanonicalized(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slumber.toml"), []byte(`
[server]
command = "run.sh"
directory = "world"
`), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Act
	cfg, err := load("slumber.toml", mapLookup(nil), logger.Nop())

	// Assert: provenance is absolute, so the derived directory stays valid
	// even if the process later changes its working directory.
	require.NoError(t, err)
	path, ok := cfg.Path()
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(path))
	assert.True(t, filepath.IsAbs(cfg.ServerDirectory()))
	assert.Equal(t, "world", filepath.Base(cfg.ServerDirectory()))
}

func TestLoad_PublicAPIUsesProcessEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("SLUMBER_SERVER_COMMAND", "env-run.sh")
	p := filepath.Join(t.TempDir(), "nope.toml")

	// Act
	cfg, err := Load(p, logger.Nop())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env-run.sh", cfg.Server.Command)
}
