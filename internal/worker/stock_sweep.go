package worker

// stock_sweep.go
// Background goroutine that periodically scans the catalog for products at or
// below their minimum and enqueues an alert for each. A Redis SETNX key with
// a 24h TTL deduplicates alerts so a product that stays low all day triggers
// one mail, not one per sweep.

import (
	"context"
	"time"

	"heladosupply/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const sweepDedupeTTL = 24 * time.Hour

// StockSweepConfig holds the dependencies of the sweep goroutine.
type StockSweepConfig struct {
	Products   repository.ProductRepository
	Dispatcher *Dispatcher
	RDB        *redis.Client
	Interval   time.Duration
}

// StartStockSweep launches the periodic low-stock scan. It respects the
// context for graceful shutdown.
func StartStockSweep(ctx context.Context, cfg StockSweepConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("stock_sweep: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("stock_sweep: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg StockSweepConfig) {
	products, err := cfg.Products.ListBelowMinimum(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stock_sweep: failed to list low-stock products")
		return
	}
	if len(products) == 0 {
		return
	}

	log.Info().Int("count", len(products)).Msg("stock_sweep: low-stock products found")

	for _, p := range products {
		if cfg.RDB != nil {
			key := "alerted:stock:" + p.ID.String()
			ok, err := cfg.RDB.SetNX(ctx, key, 1, sweepDedupeTTL).Result()
			if err != nil {
				log.Error().Err(err).Str("product", p.Name).Msg("stock_sweep: dedupe check failed")
				continue
			}
			if !ok {
				continue // already alerted within the TTL window
			}
		}

		payload := StockAlertPayload{
			ProductID:   p.ID.String(),
			ProductName: p.Name,
			Stock:       p.Stock,
			MinStock:    p.MinStock,
		}
		if err := cfg.Dispatcher.EnqueueStockAlert(ctx, payload); err != nil {
			log.Error().Err(err).Str("product", p.Name).Msg("stock_sweep: failed to enqueue alert")
		}
	}
}
