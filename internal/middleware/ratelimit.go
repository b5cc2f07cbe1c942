package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-ops/pkg/response"
)

// RateLimit rejects requests beyond the configured rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
