package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SIGNING_KEY", "secret")

	_, err := Load("venaules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRequiresSigningKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/venaules")
	t.Setenv("JWT_SIGNING_KEY", "")

	_, err := Load("venaules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SIGNING_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/venaules")
	t.Setenv("JWT_SIGNING_KEY", "secret")

	cfg, err := Load("venaules")
	require.NoError(t, err)

	assert.Equal(t, "venaules", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.Equal(t, 100, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "venaules", cfg.Metrics.Prefix)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/venaules")
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg, err := Load("venaules")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 72, cfg.JWT.ExpirationHours)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
}
