package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file", c.Storage.Backend)
	assert.Equal(t, ".savings", c.Storage.Path)
	assert.Equal(t, "USD", c.Default.Currency)
	assert.Equal(t, "#3B82F6", c.Default.IconColor)
	assert.Equal(t, zerolog.WarnLevel, c.LogLevel())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: sqlite
  path: /tmp/goals.db
default:
  currency: EUR
log:
  level: debug
`), 0o644))
	t.Setenv("SGS_DEFAULT_CURRENCY", "IDR")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.Storage.Backend)
	assert.Equal(t, "/tmp/goals.db", c.Storage.Path)
	assert.Equal(t, "IDR", c.Default.Currency, "environment wins over the file")
	assert.Equal(t, "#3B82F6", c.Default.IconColor)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit file must exist")

	t.Chdir(t.TempDir())
	t.Setenv("SGS_STORAGE_BACKEND", "cloud")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestLogLevel_Unknown(t *testing.T) {
	c := Config{Log: LogConfig{Level: "loud"}}
	assert.Equal(t, zerolog.WarnLevel, c.LogLevel())
}
