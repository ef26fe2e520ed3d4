package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "LOG_LEVEL", "CACHE_BACKEND", "CACHE_TTL", "WARM_CRON", "RULES_FILE", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "memory", cfg.CacheBackend)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "0 3 * * *", cfg.WarmCron)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "90m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()
	assert.Equal(t, "redis", cfg.CacheBackend)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)

	t.Setenv("CACHE_TTL", "soon")
	assert.Equal(t, 24*time.Hour, Load().CacheTTL)
}

func TestDSN(t *testing.T) {
	t.Setenv("QC_DB_USER", "festivos")
	t.Setenv("QC_DB_PASSWORD", "secret")
	t.Setenv("QC_DB_HOST", "db.internal")
	t.Setenv("QC_DB_PORT", "5432")
	t.Setenv("QC_DB_NAME", "festivos")

	cfg := Config{Env: "qc", DBSSLMode: "disable", DBTimeZone: "UTC"}
	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=db.internal user=festivos password=secret dbname=festivos port=5432 sslmode=disable TimeZone=UTC", dsn)

	_, err = Config{Env: "staging"}.DSN()
	assert.Error(t, err)

	t.Setenv("DEV_DB_HOST", "")
	_, err = Config{Env: "dev"}.DSN()
	assert.Error(t, err)
}
