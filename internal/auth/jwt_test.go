package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 24)

	pair, err := svc.GenerateTokenPair("user-1", "vendor")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := svc.ValidateToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 24)
	other := NewJWTService("other-secret", 1, 24)

	pair, err := svc.GenerateTokenPair("user-1", "customer")
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.Access)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 1, 24)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
