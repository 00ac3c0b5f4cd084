package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Equal(t, 0.0, cfg.Analytics.HalfLifeDays)
	assert.Equal(t, 0, cfg.Analytics.ExpiringSoonDays)
	assert.Nil(t, cfg.Analytics.PenSizes)
	assert.Equal(t, 1000, cfg.Analytics.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.Analytics.CacheTTL)

	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "mounjaro_hub", cfg.Database.DatabaseName)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "25")
	t.Setenv("HALF_LIFE_DAYS", "4.5")
	t.Setenv("EXPIRING_SOON_DAYS", "7")
	t.Setenv("PEN_SIZES", "2.5, 5, 10")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-1, key-2")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("MONGODB_DATABASE", "tracker_test")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.RateLimit)
	assert.Equal(t, 4.5, cfg.Analytics.HalfLifeDays)
	assert.Equal(t, 7, cfg.Analytics.ExpiringSoonDays)
	assert.Equal(t, []float64{2.5, 5, 10}, cfg.Analytics.PenSizes)
	assert.True(t, cfg.Auth.Enabled)
	assert.True(t, cfg.Auth.APIKeys["key-1"])
	assert.True(t, cfg.Auth.APIKeys["key-2"])
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "tracker_test", cfg.Database.DatabaseName)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://app.example.com")
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("HALF_LIFE_DAYS", "abc")
	t.Setenv("AUTH_ENABLED", "maybe")
	t.Setenv("CURVE_CACHE_TTL", "soon")
	t.Setenv("PEN_SIZES", "-2, 0, x")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 0.0, cfg.Analytics.HalfLifeDays)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Analytics.CacheTTL)
	assert.Empty(t, cfg.Analytics.PenSizes)
}
