package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saradorri/backoffice/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "s3cret", Expiry: 8 * time.Hour, Issuer: "backoffice"})

	token, err := svc.GenerateToken(42, "admin", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Expiry: time.Hour})

	_, err := svc.GenerateToken(1, "u", "viewer")
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestJWTService_RejectsForeignAndExpiredTokens(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "one", Expiry: time.Hour}
	svc := NewJWTService(cfg).(*jwtService)

	other := NewJWTService(&config.JWTConfig{Secret: "two", Expiry: time.Hour})
	foreign, err := other.GenerateToken(1, "u", "viewer")
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := svc.GenerateToken(1, "u", "viewer")
	require.NoError(t, err)
	svc.now = time.Now
	_, err = svc.ValidateToken(stale)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, h.Compare(hash, "admin123"))
	assert.False(t, h.Compare(hash, "wrong"))

	_, err = h.Hash("")
	assert.Error(t, err)
}
