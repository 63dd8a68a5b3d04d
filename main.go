// Package main provides the entry point for the ghwire service, which receives
// GitHub webhooks, serves them over GraphQL and manages stars for the token's user.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ortelius/ghwire/internal/api"
	"github.com/ortelius/ghwire/internal/config"
	"github.com/ortelius/ghwire/internal/services"
	"github.com/ortelius/ghwire/util"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := util.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store := services.NewEventStore(cfg.EventBuffer)
	defer func() { _ = store.Close() }()

	app, err := api.NewFiberApp(cfg, store, logger)
	if err != nil {
		logger.Fatal("Failed to create app", zap.Error(err))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		if err := app.Shutdown(); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
	}()

	if cfg.GitHub.Token == "" {
		logger.Warn("GITHUB_TOKEN is not set; star endpoints will be rejected upstream")
	}

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.Int("event_buffer", cfg.EventBuffer),
		zap.String("graphql", "/api/v1/graphql"),
		zap.String("webhooks", "/api/v1/webhooks/github"),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
