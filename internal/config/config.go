// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Stock    StockConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// StockConfig controls where stock workbooks are found.
type StockConfig struct {
	// Dir is the folder scanned for daily stock workbooks (default: .)
	Dir string `env:"STOCK_DIR" default:"."`

	// Extension is the workbook file extension (default: .xlsx)
	Extension string `env:"STOCK_EXTENSION" default:".xlsx"`

	// Select picks the latest file: name (descending file name) or mtime
	// (most recently modified) (default: name)
	Select string `env:"STOCK_SELECT" default:"name"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 300)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"300"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled mounts the metrics endpoint (default: true)
	Enabled bool `env:"METRICS_ENABLED" default:"true"`

	// Path is the URL path of the metrics endpoint (default: /metrics)
	Path string `env:"METRICS_PATH" default:"/metrics"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
