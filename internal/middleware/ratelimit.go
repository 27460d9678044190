package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"proxy-jobs-export/pkg/response"
)

// RateLimit rejects clients that exceed the configured request rate with 429.
// Clients are keyed by c.ClientIP(), so forwarding headers only count when the
// engine trusts the peer that sent them.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if err := m.allow(ip); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   err.Error(),
			})
			return
		}
		c.Next()
	}
}

func (m Middleware) allow(key string) error {
	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, limiter)
	}
	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
