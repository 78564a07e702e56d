package middleware

import (
	"log/slog"
	"net/http"

	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/infra/ratelimit"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	ErrRateLimited        = errs.New("rate limit exceeded")
	ErrLimiterUnavailable = errs.New("rate limiter unavailable")
)

// RateLimit counts requests per client IP. When the limiter itself fails the
// request passes if cfg.FailOpen is set.
func RateLimit(limiter ratelimit.Limiter, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			slog.Warn("rate limiter error", "client_ip", ip, "error", err.Error())
			if cfg.FailOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.Mark(err, ErrLimiterUnavailable), "Rate limiter unavailable", nil)
			return
		}
		if !allowed {
			slog.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests, try again later", nil)
			return
		}
		c.Next()
	}
}
