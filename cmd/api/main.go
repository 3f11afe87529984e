package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/app"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/config"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() { _ = application.Close() }()

	if application.Scheduler != nil {
		if err := application.Scheduler.Start(ctx); err != nil {
			logger.Error("start sync scheduler", "error", err)
			os.Exit(1)
		}
		logger.Info("sync scheduler started", "interval", cfg.SyncJobInterval.String())
	}

	go func() {
		logger.Info("http server starting",
			"addr", cfg.HTTPAddr,
			"storage", cfg.Storage,
			"env", cfg.AppEnv,
		)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	if application.Scheduler != nil {
		if err := application.Scheduler.Stop(); err != nil {
			logger.Warn("stop sync scheduler", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}
