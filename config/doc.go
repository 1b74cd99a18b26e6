// Package config provides 12-factor configuration for the library.
//
// Configuration is loaded from environment variables with sensible defaults
// and seeds the browser session builder; every setting can still be
// overridden programmatically on the builder itself.
//
// Environment Variables:
//   - NO_BROWSER_USER_AGENT, NO_BROWSER_TIMEOUT, NO_BROWSER_MAX_REDIRECTS
//   - NO_BROWSER_COOKIE_STORE, NO_BROWSER_SKIP_TLS_VERIFY, NO_BROWSER_RPS
//   - NO_BROWSER_LOG, NO_BROWSER_LOG_LEVEL, NO_BROWSER_LOG_DEV
package config
