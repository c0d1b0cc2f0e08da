package authservice

import (
	"context"
	"crypto/subtle"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/auth"
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = apperror.NewUnauthorizedErr("invalid credentials")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockauthservice
type TokenManager interface {
	GenerateToken(subject string) (string, error)
}

type PasswordManager interface {
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	admin           config.Admin
	tokenManager    TokenManager
	passwordManager PasswordManager
	logger          *zap.Logger
}

func New(
	admin config.Admin,
	tokenManager TokenManager,
	passwordManager PasswordManager,
	logger *zap.Logger,
) *service {
	return &service{
		admin:           admin,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		logger:          logger,
	}
}

func (s *service) Login(ctx context.Context, dto auth.LoginRequest) (*auth.TokenResponse, error) {
	usernameMatches := subtle.ConstantTimeCompare([]byte(dto.Username), []byte(s.admin.Username)) == 1

	// compared even when the username is wrong
	passwordErr := s.passwordManager.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(dto.Password))

	if !usernameMatches || passwordErr != nil {
		s.logger.Warn("failed login attempt", zap.String("username", dto.Username))
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokenManager.GenerateToken(s.admin.Username)
	if err != nil {
		s.logger.Error("unexpected error when generating jwt token", zap.Error(err))
		return nil, err
	}

	return &auth.TokenResponse{AccessToken: accessToken}, nil
}
