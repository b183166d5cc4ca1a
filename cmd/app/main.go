package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GachaGame_Go/internal/bootstrap"
	"github.com/osse101/GachaGame_Go/internal/config"
	"github.com/osse101/GachaGame_Go/internal/database"
	"github.com/osse101/GachaGame_Go/internal/database/postgres"
	"github.com/osse101/GachaGame_Go/internal/entropy"
	"github.com/osse101/GachaGame_Go/internal/gacha"
	"github.com/osse101/GachaGame_Go/internal/server"
)

const (
	logDir          = "logs"
	dbMaxConns      = 25
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title Gacha Game API
// @version 1.0
// @description Deterministic character roll service with a persistent mint ledger
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, logDir)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewGachaRepository(pool)
	gachaService := gacha.NewService(repo, entropy.NewSystemLedger(), resilientPublisher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, gachaService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})
}
