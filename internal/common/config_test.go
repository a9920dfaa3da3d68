package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8090, config.Server.Port)
	assert.Equal(t, "gemini-1.5-flash-latest", config.Clients.Gemini.Model)
	assert.Empty(t, config.Clients.Gemini.APIKey)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folioscope.toml")
	content := `
environment = "production"

[server]
host = "127.0.0.1"
port = 9000

[clients.gemini]
api_key = "test-key"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.True(t, config.IsProduction())
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, 9000, config.Server.Port)
	assert.Equal(t, "test-key", config.Clients.Gemini.APIKey)
	assert.Equal(t, "debug", config.Logging.Level)

	// Unset sections keep defaults.
	assert.Equal(t, "gemini-1.5-flash-latest", config.Clients.Gemini.Model)
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, "development", config.Environment)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FOLIOSCOPE_ENV", "staging")
	t.Setenv("FOLIOSCOPE_PORT", "9999")
	t.Setenv("FOLIOSCOPE_GEMINI_API_KEY", "env-key")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", config.Environment)
	assert.Equal(t, 9999, config.Server.Port)
	assert.Equal(t, "env-key", config.Clients.Gemini.APIKey)
}

func TestClientTimeouts(t *testing.T) {
	yahoo := YahooConfig{Timeout: "5s"}
	assert.Equal(t, "5s", yahoo.GetTimeout().String())

	// Malformed durations fall back to the default.
	gnews := GNewsConfig{Timeout: "not-a-duration"}
	assert.Equal(t, "10s", gnews.GetTimeout().String())
}
