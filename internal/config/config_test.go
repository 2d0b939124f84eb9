package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("ORDERKIT_PRIMARY.ENV", "test")
	t.Setenv("ORDERKIT_SERVER.PORT", "8080")
	t.Setenv("ORDERKIT_SERVER.READ_TIMEOUT", "10")
	t.Setenv("ORDERKIT_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("ORDERKIT_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("ORDERKIT_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "orderkit", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
	assert.NotEmpty(t, cfg.Observability.Logging.Level)
}

func TestLoadRateLimitDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ORDERKIT_RATE_LIMIT.ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("ORDERKIT_PRIMARY.ENV", "test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
