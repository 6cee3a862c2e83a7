// Package redis provides the shared redis client. The client is
// optional: when no address is configured nothing is connected and
// consumers (currently only the rate limiter) must tolerate a nil
// client.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/teleforce-labs/teleforce/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("redis",
	fx.Provide(NewClient),
)

func NewClient(cfg config.Config, log *zap.Logger) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		log.Named("redis").Info("no redis address configured, client disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
