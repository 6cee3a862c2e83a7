package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teleforce-labs/teleforce/internal/config"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, cfg config.RateLimitConfig, addr string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var client *redis.Client
	if addr != "" {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}

	r := gin.New()
	r.Use(New(client, zap.NewNop(), cfg).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLimiterBlocksAboveThreshold(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	r := newTestRouter(t, config.RateLimitConfig{Enabled: true, RequestsPerMinute: 3}, s.Addr())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r))
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r))
}

func TestLimiterDisabledPassesThrough(t *testing.T) {
	r := newTestRouter(t, config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1}, "")

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r))
	}
}

func TestLimiterFailsOpenWhenRedisDown(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()

	r := newTestRouter(t, config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1}, addr)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r))
	}
}
