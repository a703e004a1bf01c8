package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vivah/config"
	"vivah/internal/cache"
	"vivah/internal/database"
	"vivah/internal/logger"
	"vivah/internal/router"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}
	database.SeedDefaults(db)

	// The service stays up without redis; listings and detail views just
	// skip the projection cache.
	profileCache, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", "err", err)
		profileCache = nil
	}

	r := router.Setup(cfg, db, profileCache)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
	if profileCache != nil {
		_ = profileCache.Close()
	}
	logger.Info("server stopped")
}
