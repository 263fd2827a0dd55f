package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://data.ny.gov/resource/vxuj-8kew.json", cfg.Ridership.URL)
	assert.Equal(t, "date", cfg.Ridership.Order)
	assert.Equal(t, "https://data.cityofnewyork.us/resource/rc75-m7u3.json", cfg.CaseCount.URL)
	assert.Equal(t, "date_of_interest", cfg.CaseCount.Order)
	assert.Equal(t, 50000, cfg.Socrata.PageSize)
	assert.Zero(t, cfg.Socrata.Timeout)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 32, cfg.Cache.Size)
	assert.False(t, cfg.CacheWarmer.Enabled)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("SOCRATA_PAGE_SIZE", "1000")
	t.Setenv("SOCRATA_TIMEOUT", "30s")
	t.Setenv("CACHE_WARMER_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("RIDERSHIP_URL", "http://localhost:9999/ridership.json")

	cfg := newTestConfig(t)

	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Socrata.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Socrata.Timeout)
	assert.True(t, cfg.CacheWarmer.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "http://localhost:9999/ridership.json", cfg.Ridership.URL)
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOCRATA_PAGE_SIZE", "0")
	t.Setenv("CACHE_TTL", "-5s")

	cfg := newTestConfig(t)

	assert.Equal(t, 50000, cfg.Socrata.PageSize)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}
