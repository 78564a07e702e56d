//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"ranch-booking/internal/handler/dto/request"
	"ranch-booking/internal/pkg/cookie"
	"ranch-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin logs in through the API and returns the token from the
// admin_token cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, tokenCookie, "admin token cookie not set")
	require.NotEmpty(t, tokenCookie.Value, "admin token cookie is empty")

	return tokenCookie.Value
}

func Logout(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
