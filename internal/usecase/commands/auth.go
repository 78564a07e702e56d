package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/pkg/errs"
	"ranch-booking/internal/pkg/jwt"
	"ranch-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Name      string
}

type AuthCommands interface {
	Login(ctx context.Context, username, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
	now        func() time.Time
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      cfg.Admin,
		jwtService: jwtService,
		now:        time.Now,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, pass string) (*LoginResult, error) {
	// Same error for unknown user and wrong password to prevent enumeration
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) != 1 {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if err := password.ComparePassword(a.admin.PasswordHash, pass); err != nil {
		slog.WarnContext(ctx, "admin login rejected", "username", username)
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	issuedAt := a.now()
	token, err := a.jwtService.GenerateToken(a.admin.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: issuedAt.Add(a.jwtService.TokenDuration()),
		Name:      a.admin.Name,
	}, nil
}
