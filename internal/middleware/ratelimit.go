package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/limiter"
)

// RateLimit enforces a per-client budget on the route. Redis errors fail
// open so a limiter outage never takes the API down with it.
func RateLimit(l *limiter.RateLimiter, scope string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := l.Allow(scope, c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}
		c.Next()
	}
}
