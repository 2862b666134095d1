package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("stock data loaded", "records", 42)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %s", out)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if entry["msg"] != "stock data loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["records"] != float64(42) {
		t.Errorf("records = %v", entry["records"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "text").Debug("filtering", "category", "MS")

	if !strings.Contains(buf.String(), "category=MS") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestFromContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "text"))
	defer slog.SetDefault(prev)

	var ctx context.Context
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	WithFields(ctx, "file", "2025-01-31.xlsx").Info("reload")

	out := buf.String()
	if !strings.Contains(out, "request_id=") {
		t.Errorf("missing request_id: %q", out)
	}
	if !strings.Contains(out, "file=2025-01-31.xlsx") {
		t.Errorf("missing field: %q", out)
	}
}

func TestFromContext_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "text"))
	defer slog.SetDefault(prev)

	FromContext(context.Background()).Info("startup")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id: %q", buf.String())
	}
}
