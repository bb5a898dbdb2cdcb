package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/srec-coin/coin-backend/config"
	httpx "github.com/srec-coin/coin-backend/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:        cfg.Services.Auth,
		Hackathons:  cfg.Services.Hackathons,
		Blog:        cfg.Services.Blog,
		Submissions: cfg.Services.Submissions,
		Metrics:     cfg.Services.Metrics,
		Tokens:      cfg.Services.Tokens,
	})

	// Order: Recover outermost so panics in logging are also caught.
	handler := httpx.Recover(logger)(httpx.Logging(logger)(router))

	server := &http.Server{
		Addr:              cfg.Config.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Config.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// RunUntilSignal blocks until SIGINT or SIGTERM, then gracefully shuts the
// server down within the configured timeout.
func RunUntilSignal(ctx context.Context, server *http.Server, cfg *config.AppConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}
