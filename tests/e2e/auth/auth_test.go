//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"ranch-booking/internal/handler/dto/request"
	"ranch-booking/internal/pkg/cookie"
	"ranch-booking/internal/pkg/jwt"
	"ranch-booking/tests/common/authtest"
	"ranch-booking/tests/common/httptest"
	"ranch-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: "admin", password: e2e.AdminPassword, expectedStatus: http.StatusOK},
		{name: "wrong password", username: "admin", password: "wrong", expectedStatus: http.StatusUnauthorized},
		{name: "unknown user", username: "root", password: e2e.AdminPassword, expectedStatus: http.StatusUnauthorized},
		{name: "missing password", username: "admin", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			s.Equal(tt.expectedStatus, rec.Code, rec.Body.String())

			tokenCookie := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
			if tt.expectedStatus == http.StatusOK {
				s.Require().NotNil(tokenCookie)
				s.True(tokenCookie.HttpOnly)
			} else {
				s.Nil(tokenCookie)
			}
		})
	}
}

func (s *authSuite) TestSession() {
	s.Run("cookie from login opens admin routes", func() {
		token := authtest.LoginAdmin(s.T(), s.Router, "admin", e2e.AdminPassword)
		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: token}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/reservations", nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("logout clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})

	s.Run("expired token is rejected", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), "admin", jwt.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("non-admin role is forbidden", func() {
		token := s.jwtHelper.GenerateToken(s.T(), "guest", "viewer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stats", nil, token)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
