package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8*time.Second, cfg.Simulator.Interval)
	assert.Equal(t, 200, cfg.Simulator.HistoryLimit)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "password", cfg.Admin.Password)
	assert.Equal(t, 5, cfg.Admin.LoginPerMinute)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Hotline.CallDuration)
	assert.Equal(t, 20*time.Second, cfg.Quotes.Interval)
	assert.Equal(t, "week", cfg.Dashboard.DefaultRange)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, DBPath(), cfg.DatabasePath())
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
simulator:
  interval: 2s
  history_limit: 50
  seed: 42
server:
  addr: ":9000"
log:
  format: json
store:
  path: /tmp/mindhub-test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Simulator.Interval)
	assert.Equal(t, 50, cfg.Simulator.HistoryLimit)
	assert.Equal(t, uint64(42), cfg.Simulator.Seed)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/mindhub-test.db", cfg.DatabasePath())
	// Untouched keys keep defaults.
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MINDHUB_SERVER_ADDR", ":7000")
	t.Setenv("MINDHUB_SIMULATOR_INTERVAL", "500ms")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulator.Interval)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "MINDHUB_ADMIN_USERNAME=ops\n")
	t.Cleanup(func() { os.Unsetenv("MINDHUB_ADMIN_USERNAME") })

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "ops", cfg.Admin.Username)
}

func TestLoad_BadFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, t.TempDir(), "config.yaml", "simulator: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), expandPath("~/x"))
	assert.Equal(t, "/abs", expandPath("/abs"))
}
