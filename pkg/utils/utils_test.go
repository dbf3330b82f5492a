package utils

import (
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("maria@restaurant.com"))
	assert.True(t, IsValidEmail("Maria.Garcia+shift@restaurant.co"))
	assert.True(t, IsValidEmail("ana@bistro.restaurant"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@domain"))
	assert.False(t, IsValidEmail(""))
}

func TestInt64Conversions(t *testing.T) {
	assert.Equal(t, "1756500000123", Int64ToStr(1756500000123))

	n, err := StrToInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = StrToInt64("forty-two")
	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "resto-admin-backend", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("definitely.not.a-jwt")
	assert.Error(t, err)
}

func TestAccessTokenSignedWithConfiguredSecret(t *testing.T) {
	// JWT_SECRET is set after package init, the same timing as .env
	// loading in main; tokens must still be signed with it, not with the
	// dev fallback.
	t.Setenv("JWT_SECRET", "operator-configured-secret")

	token, err := GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte("dev-only-resto-admin-jwt-secret"), nil
	})
	assert.Error(t, err, "token must not verify under the dev fallback once JWT_SECRET is configured")
}
