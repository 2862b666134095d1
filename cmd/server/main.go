package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/config"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/core"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/logging"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/metrics"
	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"stock_dir", cfg.Stock.Dir,
		"stock_select", cfg.Stock.Select,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	policy, err := core.ParseSelectionPolicy(cfg.Stock.Select)
	if err != nil {
		slog.Error("invalid stock selection policy", "error", err)
		os.Exit(1)
	}
	loadCfg := core.LoadConfig{
		Dir:       cfg.Stock.Dir,
		Extension: cfg.Stock.Extension,
		Policy:    policy,
	}

	server := web.NewServer(cfg, func(ctx context.Context) (*core.Session, error) {
		return core.Load(ctx, loadCfg)
	}, metrics.New())

	// A failed first load halts the UI but keeps the server up, so the
	// operator can fix the folder and use Reload.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Reload(ctx); err != nil {
		msg := core.MapError(err)
		slog.Warn("serving halted session", "code", msg.Code, "message", msg.Message)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}

	slog.Info("server stopped")
}
