package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/radiative-forcing-dashboard/internal/adapter/http"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/config"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/dataset"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// The dataset is loaded once and is immutable for the process lifetime.
	// Any load failure is fatal; the server never starts on a broken dataset.
	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	metrics.DatasetRows.Set(float64(ds.Len()))
	logger.Info("dataset loaded", "path", cfg.DataPath, "rows", ds.Len(), "sources", len(ds.Sources()))

	srv := httpadapter.NewServer(cfg.HTTPAddr, ds, metrics, logger, cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
