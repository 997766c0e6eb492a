package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/interviews")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("NOTIFY_ENDPOINT", "")
	t.Setenv("NOTIFY_TOPIC", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Empty(t, cfg.NotifyEndpoint)
}

func TestFromEnv_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LLM_API_KEY", "test-key")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/interviews")
	t.Setenv("LLM_API_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_API_KEY")
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/interviews")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestFromEnv_NotifyTopicRequiredWithEndpoint(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/interviews")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("NOTIFY_ENDPOINT", "https://push.example.com/send")
	t.Setenv("NOTIFY_TOPIC", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFY_TOPIC")
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")

	_, err := NewPasswordConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt cost out of range")
}
