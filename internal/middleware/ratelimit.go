package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"insurance-renewal-assistant/pkg/response"
)

const (
	limiterCacheSize = 1000
	limiterCacheTTL  = 5 * time.Minute
)

// RateLimit throttles requests per client IP. Limiters are cached with a
// sliding TTL so idle clients age out instead of leaking memory.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.Chat.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: client %s throttled", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down.",
			})
			return
		}

		c.Next()
	}
}
