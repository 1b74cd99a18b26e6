package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all library configuration.
type Config struct {
	Client  ClientConfig
	Logging LogConfig
}

// ClientConfig holds defaults for the http client behind a browser session.
type ClientConfig struct {
	UserAgent         string  `envconfig:"NO_BROWSER_USER_AGENT" default:"no-browser/1.0"`
	TimeoutSeconds    int     `envconfig:"NO_BROWSER_TIMEOUT" default:"30"`
	MaxRedirects      int     `envconfig:"NO_BROWSER_MAX_REDIRECTS" default:"10"`
	CookieStore       bool    `envconfig:"NO_BROWSER_COOKIE_STORE" default:"true"`
	SkipTLSVerify     bool    `envconfig:"NO_BROWSER_SKIP_TLS_VERIFY" default:"false"`
	RequestsPerSecond float64 `envconfig:"NO_BROWSER_RPS" default:"0"`
}

// LogConfig holds logging configuration. Logging is off by default so the
// library stays silent inside embedding applications.
type LogConfig struct {
	Enabled     bool   `envconfig:"NO_BROWSER_LOG" default:"false"`
	Level       string `envconfig:"NO_BROWSER_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"NO_BROWSER_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			UserAgent:         "no-browser/1.0",
			TimeoutSeconds:    30,
			MaxRedirects:      10,
			CookieStore:       true,
			SkipTLSVerify:     false,
			RequestsPerSecond: 0,
		},
		Logging: LogConfig{
			Enabled:     false,
			Level:       "info",
			Development: false,
		},
	}
}
