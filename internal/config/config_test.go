package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
store:
  dialect: postgres
  dsn: postgres://core2@localhost/core2
auth:
  url: https://auth.example.test
  anon_key: anon
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DialectPostgres, cfg.Store.Dialect)
	assert.Equal(t, "postgres://core2@localhost/core2", cfg.Store.DSN)
	assert.True(t, cfg.Store.Migrate, "migrate keeps its default")
	assert.Equal(t, "https://auth.example.test", cfg.Auth.URL)
	assert.Equal(t, "anon", cfg.Auth.AnonKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Offline())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "store:\n  dsn: /tmp/file.db\n")
	t.Setenv("CORE2_STORE_DSN", "/tmp/env.db")
	t.Setenv("CORE2_OWNER_ID", "owner-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.Store.DSN)
	assert.Equal(t, "owner-env", cfg.OwnerID)
	assert.True(t, cfg.Offline())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "store:\n  dialect: mysql\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store.dialect")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DialectSQLite, cfg.Store.Dialect)
	assert.Equal(t, "text", cfg.Log.Format)

	err = WriteDefault(path, false)
	assert.Error(t, err, "existing file must not be overwritten without force")
	assert.NoError(t, WriteDefault(path, true))
}
