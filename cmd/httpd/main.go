package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcoder/internal/bootstrap"
	"medcoder/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("Starting prediction HTTP server",
		"service", cfg.Service.Name,
		"version", cfg.Service.Version,
		"port", cfg.Service.Port,
		"debug", cfg.Service.Debug,
	)

	tel := telemetry.NewProvider()

	components, err := bootstrap.NewComponents(cfg, logger, tel)
	if err != nil {
		logger.Error("Failed to build components", "error", err)
		os.Exit(1)
	}
	if components.DB != nil {
		defer func() { _ = components.DB.Close() }()
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- components.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logger.Info("Shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := components.Server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Server stopped gracefully")
	}
}
