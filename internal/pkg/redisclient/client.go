package redisclient

import (
	"context"
	"fmt"
	"time"

	"cookieshub/internal/pkg/config"
	"cookieshub/pkg/logger"
	retrierconfig "cookieshub/pkg/retrier"
	"cookieshub/pkg/retrier/backoff_adapter"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout     = 2 * time.Second
	readTimeout     = time.Second
	initialInterval = time.Second
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
		ReadTimeout: readTimeout,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	var attempt uint64
	retrier := backoff_adapter.New(retrierconfig.StartupConfig(initialInterval))
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		redisLog.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Redis connection")

		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		redisLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	redisLog.Info("Redis connection established")
	return client, nil
}
