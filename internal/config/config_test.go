package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at temp dirs and clears the
// variables LoadConfig reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GLOWUP_DATABASE_URL", "")
	t.Setenv("GLOWUP_AUTH_TOKEN", "")
	t.Setenv("GLOWUP_LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")
	os.Unsetenv("GLOWUP_DATABASE_URL")
	os.Unsetenv("GLOWUP_AUTH_TOKEN")
	os.Unsetenv("GLOWUP_LOG_LEVEL")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "glowup")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0644))
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "glowup", "glowup.db"), cfg.DB.ConnectionString)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `
[database]
connection_string = "libsql://glowup.turso.io"
auth_token = "secret"

[log]
level = "debug"
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "libsql://glowup.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, "secret", cfg.DB.AuthToken)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `
[database]
connection_string = "/tmp/from-file.db"
`)
	t.Setenv("GLOWUP_DATABASE_URL", "/tmp/from-env.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DB.ConnectionString)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("GLOWUP_LOG_LEVEL=error\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GLOWUP_LOG_LEVEL") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_DevMode(t *testing.T) {
	isolate(t)
	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.DB.ConnectionString)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "[database\n")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	cfg := &Config{DB: DBConfig{ConnectionString: "/data/glowup.db"}, Log: LogConfig{Level: "info"}}

	path, err := Save(cfg)
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
