package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

type manager struct {
	jwtConfig config.JWT
	now       func() time.Time
}

func NewManager(jwtConfig config.JWT) *manager {
	return &manager{
		jwtConfig: jwtConfig,
		now:       time.Now,
	}
}

// GenerateToken issues an HS256 access token whose subject is the admin username.
func (m *manager) GenerateToken(subject string) (string, error) {
	now := m.now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.jwtConfig.AccessTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(m.jwtConfig.Secret))
}

func (m *manager) ParseToken(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(token *jwt.Token) (any, error) {
			return []byte(m.jwtConfig.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
