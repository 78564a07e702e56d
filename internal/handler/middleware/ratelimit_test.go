//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"ranch-booking/internal/handler/middleware"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/tests/common/httptest"
	ratelimitmock "ranch-booking/tests/mock/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRateLimitedRouter(limiter *ratelimitmock.MockLimiter, cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reservations", middleware.RateLimit(limiter, cfg), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	enabled := config.RateLimitConfig{Enabled: true, Requests: 10}

	t.Run("allowed request reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := ratelimitmock.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(true, nil).Times(1)

		rec := httptest.PerformRequest(t, newRateLimitedRouter(limiter, enabled), http.MethodPost, "/reservations", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("over the limit returns 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := ratelimitmock.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(t, newRateLimitedRouter(limiter, enabled), http.MethodPost, "/reservations", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("limiter failure passes when failing open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := ratelimitmock.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down")).Times(1)

		cfg := enabled
		cfg.FailOpen = true
		rec := httptest.PerformRequest(t, newRateLimitedRouter(limiter, cfg), http.MethodPost, "/reservations", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("limiter failure returns 503 when failing closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := ratelimitmock.NewMockLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(t, newRateLimitedRouter(limiter, enabled), http.MethodPost, "/reservations", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Rate limiter unavailable")
	})

	t.Run("disabled limiter is never consulted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := ratelimitmock.NewMockLimiter(ctrl)

		rec := httptest.PerformRequest(t, newRateLimitedRouter(limiter, config.RateLimitConfig{}), http.MethodPost, "/reservations", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
