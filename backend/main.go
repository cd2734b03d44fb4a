package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pharmacy/m/internal/api"
	"pharmacy/m/internal/config"
	"pharmacy/m/internal/database"
	"pharmacy/m/internal/metrics"
	"pharmacy/m/internal/migrations"
	"pharmacy/m/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if cfg.SeedCSV != "" {
		n, err := seed.LoadMedicines(db, cfg.SeedCSV)
		if err != nil {
			slog.Warn("medicine seed skipped", "path", cfg.SeedCSV, "error", err)
		} else {
			slog.Info("medicine seed loaded", "path", cfg.SeedCSV, "inserted", n)
		}
	}

	handler := api.New(db, api.Options{
		Secret:         cfg.Secret,
		AuthEnabled:    cfg.AuthEnabled,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
		Metrics:        metrics.New(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("pharmacy server starting", "addr", server.Addr, "driver", cfg.DatabaseDriver, "auth", cfg.AuthEnabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
}
