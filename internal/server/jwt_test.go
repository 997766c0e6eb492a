package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-evaluator/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_ValidateEmptyToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_ValidateGarbageToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	userID := uuid.New()
	token, err := testJWTService().GenerateToken(userID)
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
