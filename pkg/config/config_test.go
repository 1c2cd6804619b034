package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("adviser-shield")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "adviser-shield", cfg.Server.ServiceName)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Sentry.Enabled)
	assert.Equal(t, 8000, cfg.Analysis.BioMaxChars)
	assert.Equal(t, 5000, cfg.Analysis.TipMaxChars)
	assert.Equal(t, "facebook/bart-large-mnli", cfg.HuggingFace.Model)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.DefaultLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("ANALYSIS_TIP_MAX_CHARS", "2500")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load("adviser-shield")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 2500, cfg.Analysis.TipMaxChars)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "advisershield",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5432 user=app password=secret dbname=advisershield sslmode=require",
		cfg.DSN(),
	)
}

func TestRedisConfig_RedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.internal", Port: "6380"}
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
}

func TestRateLimitConfig_Window(t *testing.T) {
	assert.Equal(t, time.Minute, RateLimitConfig{}.Window())
	assert.Equal(t, time.Minute, RateLimitConfig{WindowSeconds: -1}.Window())
	assert.Equal(t, 30*time.Second, RateLimitConfig{WindowSeconds: 30}.Window())
}
