package authUtils

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID(t *testing.T) {
	first, err := NewSessionID()
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := NewSessionID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(1, "user", "abc")
	assert.Error(t, err)
}

func TestGenerateTokenCarriesClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateToken(42, "admin", "sess-1")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.InDelta(t, 42, claims["user_id"], 0)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "sess-1", claims["session_id"])
	assert.NotZero(t, claims["exp"])
}
