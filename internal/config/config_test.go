package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticktock-timers/ticktock-go/pkg/spawn"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, spawn.ModeAuto, cfg.Mode())
	assert.Zero(t, cfg.PoolSize)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
environment: pool
pool_size: 8
log_level: debug
event_log: /tmp/trace.tlog
`))
	require.NoError(t, err)

	assert.Equal(t, spawn.ModePool, cfg.Mode())
	assert.Equal(t, 8, cfg.PoolSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/trace.tlog", cfg.EventLog)
	assert.Equal(t, Default().MailboxSize, cfg.MailboxSize, "unset keys keep defaults")
	assert.Equal(t, Default().InboxSize, cfg.InboxSize)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "environment: [unclosed"},
		{"unknown key", "colour: blue"},
		{"unknown environment", "environment: thread"},
		{"pool without size", "environment: pool"},
		{"negative pool", "pool_size: -1"},
		{"negative mailbox", "mailbox_size: -4"},
		{"negative inbox", "inbox_size: -4"},
		{"bad level", "log_level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			var le *LoadError
			assert.True(t, errors.As(err, &le), "got %T", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticktock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: goroutine\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, spawn.ModeGoroutine, cfg.Mode())
}

func TestLoadReportsFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, filepath.Join(dir, "missing.yaml"), le.File)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("environment: wasm\n"), 0644))
	_, err = Load(bad)
	require.True(t, errors.As(err, &le))
	assert.Equal(t, bad, le.File)
	assert.Contains(t, err.Error(), "bad.yaml")
}
