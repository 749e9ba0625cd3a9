package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("user-1", domain.RoleAdmin, testSecret, time.Hour, "cash-book-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "cash-book-test", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := GenerateJWT("user-1", domain.RoleUser, testSecret, time.Hour, "")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, "other-secret")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := GenerateJWT("user-1", domain.RoleUser, testSecret, -time.Minute, "")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, testSecret)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, _, err := GenerateJWT("user-1", domain.Role("root"), testSecret, time.Hour, "")
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(token, testSecret)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAndValidateJWT("not.a.token", testSecret)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordCost = bcrypt.DefaultCost })

	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", ""))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(18)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(18)
	require.NoError(t, err)
	assert.Len(t, a, 24)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
