// Package web provides the HTTP server and handlers for the pipe stock search UI.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/config"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/core"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/logging"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/metrics"
	mw "github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/web/middleware"
)

// LoadFunc produces a fresh session. It runs at startup and on every reload.
type LoadFunc func(ctx context.Context) (*core.Session, error)

// ErrNotLoaded is reported before the first load has run.
var ErrNotLoaded = errors.New("stock data not loaded")

// state is one load outcome: either a session or the error that halted it.
type state struct {
	session *core.Session
	err     error
}

// Server is the HTTP server for the stock search application.
//
// The current session is held behind an atomic pointer and replaced
// wholesale by Reload, so request handlers never lock.
type Server struct {
	cfg     *config.Config
	load    LoadFunc
	metrics *metrics.Metrics
	router  *chi.Mux
	server  *http.Server
	limiter *rateLimiter
	now     func() time.Time

	state    atomic.Pointer[state]
	reloadMu sync.Mutex
}

// NewServer creates a new Server instance. m may be nil, in which case a
// private metrics registry is used.
func NewServer(cfg *config.Config, load LoadFunc, m *metrics.Metrics) *Server {
	if m == nil {
		m = metrics.New()
	}
	s := &Server{
		cfg:     cfg,
		load:    load,
		metrics: m,
		router:  chi.NewRouter(),
		now:     time.Now,
	}
	s.state.Store(&state{err: ErrNotLoaded})
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger(s.metrics))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Security hardening
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		s.limiter = newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(s.limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		s.router.Handle(s.cfg.Metrics.Path, s.metrics.Handler())
	}

	// Pages
	s.router.Get("/", s.handlePage)
	s.router.Post("/reload", s.handleReload)

	// Everything below needs a loaded session
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/export/availability.xlsx", s.handleExportAvailability)

		r.Route("/api", func(r chi.Router) {
			r.Get("/session", s.handleSession)
			r.Get("/options", s.handleOptions)
			r.Get("/records", s.handleRecords)
			r.Get("/availability", s.handleAvailability)
		})
	})
}

// Reload runs the loader and swaps in its outcome. A failed reload replaces
// the current session with the error, halting the UI until the next
// successful reload. Concurrent reloads are serialized.
func (s *Server) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	logger := logging.WithFields(ctx,
		"stock_dir", s.cfg.Stock.Dir,
		"select", s.cfg.Stock.Select,
	)

	session, err := s.load(ctx)
	s.metrics.ObserveLoad(session, err)

	if err != nil {
		s.state.Store(&state{err: err})
		logger.Error("stock load failed, session halted",
			"error", err,
			"code", core.MapError(err).Code,
		)
		return err
	}

	s.state.Store(&state{session: session})
	logger.Info("session ready",
		"session_id", session.ID.String(),
		"file", session.File.Name,
		"records", session.Table.Len(),
	)
	return nil
}

// current returns the active session, or the error that halted it.
func (s *Server) current() (*core.Session, error) {
	st := s.state.Load()
	return st.session, st.err
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.stop()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// requireSession rejects requests while the session is halted. Otherwise it
// pins the current session to the request context, so a reload mid-request
// does not change what the handler sees.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.current()
		if err != nil {
			respondError(w, r, err, http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, session)))
	})
}

type sessionKey struct{}

// sessionFromContext returns the session pinned by requireSession.
func sessionFromContext(ctx context.Context) *core.Session {
	session, _ := ctx.Value(sessionKey{}).(*core.Session)
	return session
}

const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; form-action 'self'; frame-ancestors 'none'"

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME type sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Prevent clickjacking
			w.Header().Set("X-Frame-Options", "DENY")

			// Inline styles only; the UI ships no scripts
			if enableCSP {
				w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
			}

			// Control referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

// writeJSON encodes v as JSON with the given status.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
