package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "GasMileageTracker/docs"
	"GasMileageTracker/internal/config"
	"GasMileageTracker/internal/handler"
	"GasMileageTracker/internal/logging"
	"GasMileageTracker/internal/service"
	"GasMileageTracker/internal/storage"
)

// @title        Gas Mileage Tracker API
// @version      1.0
// @description  Records refuels and reports fuel efficiency.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store, err := storage.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open record store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.Close()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	svc := service.NewFuelService(store, cfg.View.HistorySize, cfg.View.ChartPadding, logger)
	h := handler.New(svc, logger, cfg.Security.AccessCodeHash != "")
	router := handler.NewRouter(cfg, h, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", server.Addr), zap.String("store", cfg.Store.Driver))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server stopped with error", zap.Error(err))
		}
	}
}
