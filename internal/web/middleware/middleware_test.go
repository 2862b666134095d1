package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "untrusted client headers ignored",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "203.0.113.7:51234",
			headers:    map[string]string{"X-Real-IP": "1.2.3.4"},
			want:       "203.0.113.7",
		},
		{
			name:       "trusted proxy X-Real-IP",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:443",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
		{
			name:       "trusted proxy X-Forwarded-For takes first hop",
			trusted:    []string{"127.0.0.1"},
			remoteAddr: "127.0.0.1:8080",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.9, 10.0.0.1"},
			want:       "198.51.100.9",
		},
		{
			name:       "trusted proxy with garbage header keeps remote",
			trusted:    []string{"127.0.0.1"},
			remoteAddr: "127.0.0.1:8080",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			want:       "127.0.0.1",
		},
		{
			name:       "no trusted proxies",
			trusted:    nil,
			remoteAddr: "[::1]:9000",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4"},
			want:       "::1",
		},
		{
			name:       "invalid trusted entry skipped",
			trusted:    []string{"bogus", "192.168.0.0/16"},
			remoteAddr: "192.168.4.4:1",
			headers:    map[string]string{"X-Real-IP": "8.8.8.8"},
			want:       "8.8.8.8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

type recordingObserver struct {
	method, route string
	status        int
}

func (o *recordingObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.method, o.route, o.status = method, route, status
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	obs := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(Logger(obs))
	r.Get("/api/records", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/records?category=MS", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if obs.route != "/api/records" || obs.status != http.StatusTeapot || obs.method != http.MethodGet {
		t.Errorf("observer got %+v", obs)
	}

	out := buf.String()
	for _, want := range []string{"level=WARN", "status=418", "bytes=5", "route=/api/records"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
}

func TestLogger_NilObserver(t *testing.T) {
	h := Logger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
