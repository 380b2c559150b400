package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"clientatech-analyst/pkg/response"
)

const (
	// defaultRateLimit allows one model-backed request per second per
	// client, with a small burst for interactive use.
	defaultRateLimit = rate.Limit(1)
	defaultRateBurst = 5

	// limiterTableSize bounds the per-client limiter table; idle
	// clients age out after limiterTTL.
	limiterTableSize = 1024
	limiterTTL       = 10 * time.Minute
)

// clientLimiter keeps one token bucket per client IP in an expiring
// table so the map cannot grow without bound.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newClientLimiter(limit rate.Limit, burst int) *clientLimiter {
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterTableSize, nil, limiterTTL),
		limit:    limit,
		burst:    burst,
	}
}

func (cl *clientLimiter) allow(key string) bool {
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed the per-IP request budget.
// Model-backed endpoints are expensive; this is the cheap gate in
// front of them.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			ctx := c.Request.Context()
			m.l.Warnf(ctx, "middleware: rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}
		c.Next()
	}
}
