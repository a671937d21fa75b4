package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret", "1h", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", "jane@example.com", true)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	employeeID, _ := token.Get("employee_id")
	assert.Equal(t, "emp-1", employeeID)

	email, _ := token.Get("email")
	assert.Equal(t, "jane@example.com", email)

	isAdmin, _ := token.Get("is_admin")
	assert.Equal(t, true, isAdmin)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestParseRefreshToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	employeeID, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("emp-1", "jane@example.com", false)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ParseRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
