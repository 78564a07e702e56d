package api

import (
	"net/http"
	"time"

	reqdto "ranch-booking/internal/handler/dto/request"
	resdto "ranch-booking/internal/handler/dto/response"
	"ranch-booking/internal/handler/httperr"
	"ranch-booking/internal/handler/middleware"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/cookie"
	"ranch-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, cookieCfg: cfg.Cookie}
}

// @Summary Admin login
// @Description Checks the shared admin credential, returns a token and sets the admin cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Name:      result.Name,
	})
}

// @Summary Admin logout
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": claims.Subject, "role": claims.Role})
}
