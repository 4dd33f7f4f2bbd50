package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/equipbook/equipbook/frontend/internal/router"
	"github.com/equipbook/equipbook/frontend/internal/setup"
	"github.com/equipbook/equipbook/shared/config"
	"github.com/equipbook/equipbook/shared/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	// .env is optional; real environment variables are used when it is missing
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Warn("failed to load .env", "error", err)
	}

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}

	r, err := router.New(deps)
	if err != nil {
		logger.Log.Error("failed to set up routes", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Public.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Public.Server.ReadTimeout,
		WriteTimeout: cfg.Public.Server.WriteTimeout,
	}

	go func() {
		logger.Log.Info("starting frontend", "addr", server.Addr, "api", cfg.Public.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down frontend")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
	if deps.Limiter != nil {
		deps.Limiter.Stop()
	}
}
