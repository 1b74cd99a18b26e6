package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "no-browser/1.0", cfg.Client.UserAgent)
	assert.Equal(t, 30, cfg.Client.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Client.MaxRedirects)
	assert.True(t, cfg.Client.CookieStore)
	assert.False(t, cfg.Client.SkipTLSVerify)
	assert.Equal(t, float64(0), cfg.Client.RequestsPerSecond)

	assert.False(t, cfg.Logging.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	require.NotNil(t, cfg)
	assert.Equal(t, "no-browser/1.0", cfg.Client.UserAgent)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"NO_BROWSER_USER_AGENT":      "custom-agent/2.0",
		"NO_BROWSER_TIMEOUT":         "5",
		"NO_BROWSER_MAX_REDIRECTS":   "3",
		"NO_BROWSER_COOKIE_STORE":    "false",
		"NO_BROWSER_SKIP_TLS_VERIFY": "true",
		"NO_BROWSER_RPS":             "2.5",
		"NO_BROWSER_LOG":             "true",
		"NO_BROWSER_LOG_LEVEL":       "debug",
		"NO_BROWSER_LOG_DEV":         "true",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "custom-agent/2.0", cfg.Client.UserAgent)
	assert.Equal(t, 5, cfg.Client.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Client.MaxRedirects)
	assert.False(t, cfg.Client.CookieStore)
	assert.True(t, cfg.Client.SkipTLSVerify)
	assert.Equal(t, 2.5, cfg.Client.RequestsPerSecond)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}
