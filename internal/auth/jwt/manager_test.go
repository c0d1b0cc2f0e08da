package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodcatalog-backend/internal/config"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager(config.JWT{Secret: "secret", AccessTokenTTL: time.Hour})

	token, err := m.GenerateToken("admin")
	require.NoError(t, err)

	subject, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestManager_ParseToken_Rejects(t *testing.T) {
	m := NewManager(config.JWT{Secret: "secret", AccessTokenTTL: time.Hour})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager(config.JWT{Secret: "other", AccessTokenTTL: time.Hour})
		token, err := other.GenerateToken("admin")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewManager(config.JWT{Secret: "secret", AccessTokenTTL: time.Hour})
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := expired.GenerateToken("admin")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
