package config

import (
	"testing"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.host", envKey("DB_HOST"))
	assert.Equal(t, "db.max_open_conns", envKey("DB_MAX_OPEN_CONNS"))
	assert.Equal(t, "http.read_timeout", envKey("HTTP_READ_TIMEOUT"))
	assert.Equal(t, "amqp.url", envKey("AMQP_URL"))
	assert.Equal(t, "", envKey("PATH"))
	assert.Equal(t, "", envKey("HOME"))
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := load(env.Provider("", ".", envKey))
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)

	// untouched values keep their defaults
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "resource_events", cfg.AMQP.Queue)

	assert.Equal(t, "postgres://app:p%40ss@db:6543/shop?sslmode=disable", cfg.DB.DSN())
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := load(env.Provider("", ".", envKey))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := load(env.Provider("", ".", envKey))
	require.Error(t, err)
}

func TestLoadRejectsEmptyQueue(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("AMQP_QUEUE", "")

	_, err := load(env.Provider("", ".", envKey))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Queue")
}
