package middleware

import (
	"log/slog"
	"net/http"

	"smartstay-gateway/internal/handler/httperr"
	"smartstay-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewRateLimiter returns nil when limiting is switched off.
func NewRateLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if cfg.AIPerSecond <= 0 || cfg.AIBurst <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.AIPerSecond), cfg.AIBurst)
}

// RateLimit shares one token bucket across every route it guards.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow() {
			return
		}
		slog.Warn("Rate limit exceeded",
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		)
		resp := httperr.Response{Status: http.StatusTooManyRequests}
		resp.Error.Message = "Rate limit exceeded"
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
	}
}
