package worker

// Background goroutine that drains the retry list back onto the main queue.
// Skips ticks while the mail circuit breaker is open so parked jobs are not
// burned against a server that is known to be down.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/caffeinepub/supply-chain-management-app/internal/infra"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds the dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB *redis.Client
	CB  *infra.CircuitBreaker
}

// StartRetryCron launches a goroutine that ticks every 30s and requeues
// parked jobs. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	requeued := 0
	for i := 0; i < retryBatchSize; i++ {
		// CB may trip mid-batch once workers start reprocessing
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			break
		}

		raw, err := cfg.RDB.RPop(ctx, RetryQueue).Result()
		if err == redis.Nil {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to pop from retry list")
			return
		}

		if err := cfg.RDB.LPush(ctx, QueueNotifications, raw).Err(); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to requeue job")
			return
		}
		requeued++
	}

	if requeued > 0 {
		log.Info().Int("count", requeued).Msg("retry_cron: requeued parked jobs")
	}
}
