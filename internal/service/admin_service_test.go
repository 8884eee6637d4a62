package service

import (
	"context"
	"testing"

	"readydoc-bot/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAdmin(t *testing.T) IAdminService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Admin.Email = "ops@example.com"
	cfg.Admin.PasswordHash = string(hash)
	cfg.Admin.JWTSecret = "test-secret"
	return NewAdminService(cfg, nopLogger{})
}

func TestAdminLoginIssuesToken(t *testing.T) {
	admin := newTestAdmin(t)

	token, err := admin.Login(context.Background(), "ops@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ops@example.com", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	admin := newTestAdmin(t)
	ctx := context.Background()

	_, err := admin.Login(ctx, "ops@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = admin.Login(ctx, "someone@else.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
