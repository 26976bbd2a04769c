package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "yeqown", cfg.QR.Encoder)
	assert.Equal(t, 5*time.Second, cfg.Logo.Timeout)
	assert.Equal(t, int64(2<<20), cfg.Logo.MaxBytes)
	assert.InDelta(t, 0.2, cfg.Logo.Coverage, 1e-9)
	assert.Equal(t, 1024, cfg.Preview.MaxSessions)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9000"
qr:
  encoder: skip2
  verify: true
logo:
  timeout: 750ms
  allow-private-hosts: true
  cache:
    redis:
      addr: localhost:6379
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("PORT", "")
	t.Setenv("QRSTUDIO_LOGO_MAX_BYTES", "1024")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "skip2", cfg.QR.Encoder)
	assert.True(t, cfg.QR.Verify)
	assert.Equal(t, 750*time.Millisecond, cfg.Logo.Timeout)
	assert.True(t, cfg.Logo.AllowPrivateHosts)
	assert.Equal(t, "localhost:6379", cfg.Logo.Cache.Redis.Addr)
	assert.Equal(t, int64(1024), cfg.Logo.MaxBytes)
}

func TestPortEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [\n"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}
