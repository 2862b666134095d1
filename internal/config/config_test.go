package config

import (
	"strings"
	"testing"
	"time"
)

// env returns a LookupFunc backed by a map.
func env(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(env(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want %v", cfg.Server.WriteTimeout, 30*time.Second)
	}
	if cfg.Stock.Dir != "." {
		t.Errorf("Stock.Dir = %q, want %q", cfg.Stock.Dir, ".")
	}
	if cfg.Stock.Extension != ".xlsx" {
		t.Errorf("Stock.Extension = %q, want %q", cfg.Stock.Extension, ".xlsx")
	}
	if cfg.Stock.Select != "name" {
		t.Errorf("Stock.Select = %q, want %q", cfg.Stock.Select, "name")
	}
	if cfg.Rate.RequestsPerMinute != 300 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 300)
	}
	if !cfg.Security.EnableCSP {
		t.Error("Security.EnableCSP = false, want true")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"SERVER_PORT":     "9090",
		"STOCK_DIR":       "/srv/stock",
		"STOCK_SELECT":    "mtime",
		"LOG_LEVEL":       "debug",
		"TRUSTED_PROXIES": "10.0.0.0/8, 192.168.1.1",
		"METRICS_ENABLED": "false",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Stock.Dir != "/srv/stock" {
		t.Errorf("Stock.Dir = %q, want %q", cfg.Stock.Dir, "/srv/stock")
	}
	if cfg.Stock.Select != "mtime" {
		t.Errorf("Stock.Select = %q, want %q", cfg.Stock.Select, "mtime")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if len(cfg.Security.TrustedProxies) != 2 || cfg.Security.TrustedProxies[1] != "192.168.1.1" {
		t.Errorf("Security.TrustedProxies = %v", cfg.Security.TrustedProxies)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{
			name:    "invalid port",
			vars:    map[string]string{"SERVER_PORT": "99999"},
			wantErr: "SERVER_PORT",
		},
		{
			name:    "non-numeric port",
			vars:    map[string]string{"SERVER_PORT": "http"},
			wantErr: "invalid integer",
		},
		{
			name:    "invalid duration",
			vars:    map[string]string{"SERVER_READ_TIMEOUT": "soon"},
			wantErr: "invalid duration",
		},
		{
			name:    "invalid bool",
			vars:    map[string]string{"RATE_LIMIT_ENABLED": "maybe"},
			wantErr: "invalid boolean",
		},
		{
			name:    "unknown selection policy",
			vars:    map[string]string{"STOCK_SELECT": "newest"},
			wantErr: "STOCK_SELECT",
		},
		{
			name:    "extension without dot",
			vars:    map[string]string{"STOCK_EXTENSION": "xlsx"},
			wantErr: "STOCK_EXTENSION",
		},
		{
			name:    "invalid log level",
			vars:    map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			vars:    map[string]string{"LOG_FORMAT": "xml"},
			wantErr: "LOG_FORMAT",
		},
		{
			name:    "bad proxy",
			vars:    map[string]string{"TRUSTED_PROXIES": "not-an-ip"},
			wantErr: "TRUSTED_PROXIES",
		},
		{
			name:    "zero rate limit",
			vars:    map[string]string{"RATE_LIMIT_REQUESTS_PER_MINUTE": "0"},
			wantErr: "RATE_LIMIT_REQUESTS_PER_MINUTE",
		},
		{
			name:    "relative metrics path",
			vars:    map[string]string{"METRICS_PATH": "metrics"},
			wantErr: "METRICS_PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(env(tt.vars))
			if err == nil {
				t.Fatal("LoadFrom() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg, err := LoadFrom(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"

	err = cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %s: %v", want, err)
		}
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}
