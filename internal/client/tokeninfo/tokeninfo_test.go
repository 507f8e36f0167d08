package tokeninfo

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_JWT(t *testing.T) {
	exp := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	iat := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	token := sign(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(iat),
	})

	info, ok := Inspect(token)
	require.True(t, ok)
	assert.Equal(t, "42", info.Subject)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.True(t, iat.Equal(info.IssuedAt))
	assert.False(t, info.Expired(iat))
	assert.True(t, info.Expired(exp.Add(time.Second)))
}

func TestInspect_UserIDClaim(t *testing.T) {
	token := sign(t, jwt.MapClaims{"user_id": "7"})

	info, ok := Inspect(token)
	require.True(t, ok)
	assert.Equal(t, "7", info.Subject)
	assert.False(t, info.Expired(time.Now()), "no expiry never expires")
}

func TestInspect_OpaqueToken(t *testing.T) {
	_, ok := Inspect("abc")
	assert.False(t, ok)
}
