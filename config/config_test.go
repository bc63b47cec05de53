package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "DB_DRIVER", "APP_ENV", "PORT", "RATE_LIMIT", "RATE_WINDOW", "JWT_TTL", "CORS_ORIGINS", "JWT_SECRET")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 100, cfg.Redis.RateLimit)
	assert.Equal(t, time.Minute, cfg.Redis.RateWindow)
	assert.Equal(t, 168*time.Hour, cfg.Auth.JWTTTL)
	assert.Len(t, cfg.Server.CORSOrigins, 2)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	unsetEnv(t, "JWT_SECRET", "DB_DRIVER")
	t.Setenv("APP_ENV", "production")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cr3t")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConsole_KeyNamesOverridable(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FP_CONFIG_DIR", dir)
	t.Setenv("FP_TOKEN_KEY", "fpToken")
	unsetEnv(t, "FP_USER_KEY", "FP_PAGE_SIZE")

	cfg, err := LoadConsole(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "fpToken", cfg.TokenKey)
	assert.Equal(t, "adminUser", cfg.UserKey)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(Logger{Level: "debug", AsJSON: true})
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = NewLogger(Logger{Level: "nonsense"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
