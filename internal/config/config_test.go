package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5001", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("API_BASE_URL", "http://payments.internal:9000")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("MCP_TRANSPORT", "stdio")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://payments.internal:9000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, TransportStdio, cfg.Transport)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api_base_url: http://yaml-host:7000\nport: \"9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://yaml-host:7000", cfg.APIBaseURL)
	assert.Equal(t, "9090", cfg.Port)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		APIBaseURL: "http://localhost:5001",
		APITimeout: time.Second,
		Port:       "8000",
		Transport:  TransportHTTP,
	}

	t.Run("happy: defaults", func(t *testing.T) {
		cfg := base
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad: relative base url", func(t *testing.T) {
		cfg := base
		cfg.APIBaseURL = "/api"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad: zero timeout", func(t *testing.T) {
		cfg := base
		cfg.APITimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad: unknown transport", func(t *testing.T) {
		cfg := base
		cfg.Transport = "sse"
		assert.Error(t, cfg.Validate())
	})
}
