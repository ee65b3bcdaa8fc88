package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heladosupply/internal/config"
	"heladosupply/internal/infra"
	"heladosupply/internal/repository"
	"heladosupply/internal/router"
	"heladosupply/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Store driver: postgres (default) or memory (standalone, no DB)
	var db *gorm.DB
	var stores *repository.Stores
	switch cfg.StoreDriver {
	case "memory":
		stores = repository.NewMemoryStores()
		log.Warn().Msg("running with in-memory stores — data is lost on restart")
	default:
		db, err = infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		if err := infra.RunMigrations(db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		stores = repository.NewGormStores(db)
	}

	// Redis is optional: without it change events, the catalog cache and the
	// alert workers are disabled but the API stays functional.
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable — change events, cache and alert workers disabled")
		rdb = nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Async low-stock alerting: worker pool + periodic sweep
	dispatcher := worker.NewDispatcher(rdb)
	if rdb != nil {
		mailer := infra.NewMailer(cfg)
		cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
		alerts := worker.NewStockAlertWorker(mailer, cb, cfg.AlertEmail)
		worker.StartWorkerPool(ctx, rdb, alerts, cfg.WorkerPoolSize)
		worker.StartStockSweep(ctx, worker.StockSweepConfig{
			Products:   stores.Products,
			Dispatcher: dispatcher,
			RDB:        rdb,
			Interval:   cfg.StockSweepInterval(),
		})
	}

	r := router.New(ctx, cfg, db, rdb, stores, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("HeladoSupply backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
