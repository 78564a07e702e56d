//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"ranch-booking/internal/handler/middleware"
	"ranch-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	r := gin.New()
	r.Use(middleware.LoggingMiddleware(logger, config.LogConfig{TimeZone: "UTC"}, "/uploads"))
	r.GET("/api/services", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	r.GET("/uploads/a.png", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/uploads/missing.png", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("generates a request id and echoes it", func(t *testing.T) {
		var buf bytes.Buffer
		rec := nethttptest.NewRecorder()
		req := nethttptest.NewRequest(http.MethodGet, "/api/services", nil)
		newLoggedRouter(&buf).ServeHTTP(rec, req)

		id := rec.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
		assert.Contains(t, buf.String(), "Request started")
		assert.Contains(t, buf.String(), "request_id="+id)
	})

	t.Run("reuses a well-formed inbound id", func(t *testing.T) {
		var buf bytes.Buffer
		rec := nethttptest.NewRecorder()
		req := nethttptest.NewRequest(http.MethodGet, "/api/services", nil)
		req.Header.Set(middleware.RequestIDHeader, "edge-1234abcd")
		newLoggedRouter(&buf).ServeHTTP(rec, req)

		assert.Equal(t, "edge-1234abcd", rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("ignores a malformed inbound id", func(t *testing.T) {
		var buf bytes.Buffer
		rec := nethttptest.NewRecorder()
		req := nethttptest.NewRequest(http.MethodGet, "/api/services", nil)
		req.Header.Set(middleware.RequestIDHeader, "bad id\nwith newline")
		newLoggedRouter(&buf).ServeHTTP(rec, req)

		assert.NotEqual(t, "bad id\nwith newline", rec.Header().Get(middleware.RequestIDHeader))
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("quiet paths stay out of info logs", func(t *testing.T) {
		var buf bytes.Buffer
		rec := nethttptest.NewRecorder()
		newLoggedRouter(&buf).ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/uploads/a.png", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, buf.String())
	})

	t.Run("quiet paths still log failures", func(t *testing.T) {
		var buf bytes.Buffer
		rec := nethttptest.NewRecorder()
		newLoggedRouter(&buf).ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status_code=404")
	})
}
