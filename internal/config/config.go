// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server        ServerConfig
	Search        SearchConfig
	ApparelSearch ApparelSearchConfig
	Upload        UploadConfig
	Rate          RateLimitConfig
	Logging       LoggingConfig
	Mappings      MappingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// forwarding headers are honored for client IP resolution
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// SearchConfig holds the connection settings for the generic product index.
// When Endpoint or APIKey is empty the service runs without a backend and
// search operations degrade to empty results.
type SearchConfig struct {
	// Endpoint is the search service base URL, e.g. https://example.search.windows.net
	Endpoint string `env:"SEARCH_ENDPOINT"`

	// APIKey is the admin or query key for the search service
	APIKey string `env:"SEARCH_API_KEY"`

	// Index is the generic product index name (default: products-index)
	Index string `env:"SEARCH_INDEX" default:"products-index"`
}

// ApparelSearchConfig holds the settings for the apparel index. Endpoint and
// key fall back to the generic search service when unset.
type ApparelSearchConfig struct {
	// Index is the apparel index name (default: apparel-index)
	Index string `env:"APPAREL_SEARCH_INDEX" default:"apparel-index"`

	// SemanticConfiguration is the semantic ranking profile name
	// (default: apparel-sem-config)
	SemanticConfiguration string `env:"APPAREL_SEMANTIC_CONFIGURATION" default:"apparel-sem-config"`
}

// UploadConfig holds CSV feed upload settings.
type UploadConfig struct {
	// MaxFileSize is the maximum allowed file size in bytes (default: 100MB)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"104857600"`

	// Timeout is the maximum duration for a single feed ingestion (default: 10m)
	Timeout time.Duration `env:"UPLOAD_TIMEOUT" default:"10m"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// UploadLimit is requests per minute for upload endpoints (default: 10)
	UploadLimit int `env:"RATE_LIMIT_UPLOAD" default:"10"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MappingConfig holds field mapping registry settings.
type MappingConfig struct {
	// File is an optional YAML file of named column-to-field mappings.
	// When empty only the built-in presets are available.
	File string `env:"MAPPINGS_FILE"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// Enabled reports whether enough settings are present to reach the
// search service.
func (c *SearchConfig) Enabled() bool {
	return c.Endpoint != "" && c.APIKey != ""
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
