//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"ranch-booking/internal/handler/api"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/handler/middleware"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/cookie"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/pkg/jwt"
	"ranch-booking/internal/usecase/commands"
	"ranch-booking/tests/common/builder"
	"ranch-booking/tests/common/httptest"
	"ranch-booking/tests/common/testutil"
	commandsmock "ranch-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	jwtService   *jwt.Service
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	handler := api.NewAuthHandler(s.mockCommands, config.NewTestConfig())
	auth := middleware.NewAuthMiddleware(s.jwtService)

	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", auth.RequireAdmin(), handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns the token and sets the admin cookie", func() {
		expires := time.Now().Add(time.Hour)
		s.mockCommands.EXPECT().Login(gomock.Any(), "admin", "ranc850").
			Return(&commands.LoginResult{Token: "tok", ExpiresAt: expires, Name: "Administrator"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("tok", body.Token)
		s.Equal("Administrator", body.Name)

		c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("tok", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"username", "password"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrInvalidCredentials, errs.ErrUnauthorized)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminTokenCookieName))
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: bearer token", func() {
		token, err := s.jwtService.GenerateToken("admin", jwt.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body["username"])
		s.Equal("admin", body["role"])
	})

	s.Run("success: admin cookie", func() {
		token, err := s.jwtService.GenerateToken("admin", jwt.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/auth/me", nil,
			[]*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: token}}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 with a token signed by another key", func() {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken("admin", jwt.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 403 for a non-admin role", func() {
		token, err := s.jwtService.GenerateToken("guest", "viewer")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
