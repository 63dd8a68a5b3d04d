package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GHWIRE_CONFIG", "MS_PORT", "GHWIRE_LOG_LEVEL", "GITHUB_TOKEN", "GITHUB_API_URL", "GHWIRE_EVENT_BUFFER"} {
		if val, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, val) })
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghwire.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500, cfg.EventBuffer)
	assert.Equal(t, 30*time.Second, cfg.GitHub.Timeout)
	assert.Empty(t, cfg.GitHub.Token)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: "8080"
log_level: debug
event_buffer: 20
github:
  token: from-file
  api_url: https://ghe.example.com/api/v3/
  timeout: 5s
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.EventBuffer)
	assert.Equal(t, "from-file", cfg.GitHub.Token)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)

	t.Setenv("GITHUB_TOKEN", "from-env")
	t.Setenv("GHWIRE_EVENT_BUFFER", "7")
	t.Setenv("GHWIRE_CONFIG", path)

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GitHub.Token)
	assert.Equal(t, 7, cfg.EventBuffer)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "bad port", env: map[string]string{"MS_PORT": "http"}},
		{name: "port out of range", env: map[string]string{"MS_PORT": "70000"}},
		{name: "bad buffer", env: map[string]string{"GHWIRE_EVENT_BUFFER": "lots"}},
		{name: "zero buffer", env: map[string]string{"GHWIRE_EVENT_BUFFER": "0"}},
		{name: "bad level", env: map[string]string{"GHWIRE_LOG_LEVEL": "chatty"}},
		{name: "bad api url", env: map[string]string{"GITHUB_API_URL": "ftp://example.com"}},
		{name: "unknown yaml key", yaml: "colour: blue\n"},
		{name: "bad timeout", yaml: "github:\n  timeout: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = writeConfig(t, tt.yaml)
			}
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
