package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themeweek/showcase-api/internal/domain"
)

var testSigningKey = []byte("test-signing-key")

func TestGenerateAndParseToken(t *testing.T) {
	user := domain.User{
		ID:       "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		Username: "alice",
		IsAdmin:  true,
	}

	token, err := GenerateToken(testSigningKey, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSigningKey, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.True(t, claims.IsAdmin)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, TokenTTL)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken(testSigningKey, domain.User{ID: "id-1", Username: "alice"})
	require.NoError(t, err)

	_, err = ParseToken([]byte("another-key"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSigningKey, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   "id-1",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString(testSigningKey)
	require.NoError(t, err)

	_, err = ParseToken(testSigningKey, tokenString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_RejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never verify.
	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "id-1"})
	tokenString, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSigningKey, tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
