// Package ratelimit is a fixed-window request limiter backed by the
// shared redis client.
package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/teleforce-labs/teleforce/internal/config"
	"go.uber.org/zap"
)

type Limiter struct {
	redis *redis.Client
	log   *zap.Logger
	cfg   config.RateLimitConfig
}

func New(client *redis.Client, log *zap.Logger, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{
		redis: client,
		log:   log.Named("ratelimit"),
		cfg:   cfg,
	}
}

// Middleware counts requests per client IP in one-minute windows.
// Redis failures fail open: rejecting traffic because the limiter
// store is down is worse than briefly not limiting.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.cfg.Enabled || l.redis == nil {
			c.Next()
			return
		}

		now := time.Now().UTC()
		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), now.Format("2006-01-02T15:04"))

		count, err := l.redis.Incr(c.Request.Context(), key).Result()
		if err != nil {
			l.log.Error("rate limit counter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			l.redis.Expire(c.Request.Context(), key, 2*time.Minute)
		}

		if count > int64(l.cfg.RequestsPerMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
