package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pet-demo-api/internal/platform/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "DEBUG", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME", "DB_DSN", "LOAD_DEMO_DATA", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, logger.Info, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
	assert.Empty(t, cfg.DBDSN)
	assert.False(t, cfg.LoadDemoData)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "True")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("APP_NAME", "pets")
	t.Setenv("DB_DSN", "postgres://localhost/pets")
	t.Setenv("LOAD_DEMO_DATA", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, logger.Warn, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
	assert.Equal(t, "pets", cfg.AppName)
	assert.Equal(t, "postgres://localhost/pets", cfg.DBDSN)
	assert.True(t, cfg.LoadDemoData)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	// DEBUG fuerza nivel debug en el logger
	assert.Equal(t, logger.Debug, cfg.Logger().Level)
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "99999")
	assert.Equal(t, 5000, Load().Port)
}
