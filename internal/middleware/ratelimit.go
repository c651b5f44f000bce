package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"library-management-system/pkg/response"
)

const (
	limiterCacheSize = 4096
	limiterCacheTTL  = 10 * time.Minute
)

// RateLimit applies a per-client token bucket keyed by the caller's IP.
// Idle clients age out of the limiter cache so the map stays bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)

	return func(c *gin.Context) {
		key := c.ClientIP()

		lim, ok := limiters.Get(key)
		if !ok {
			lim = rate.NewLimiter(rate.Limit(m.cfg.RateLimitRPS), m.cfg.RateLimitBurst)
			limiters.Add(key, lim)
		}

		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
