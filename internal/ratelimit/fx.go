package ratelimit

import (
	"github.com/redis/go-redis/v9"
	"github.com/teleforce-labs/teleforce/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("ratelimit",
	fx.Provide(func(client *redis.Client, log *zap.Logger, cfg config.Config) *Limiter {
		return New(client, log, cfg.RateLimit)
	}),
)
