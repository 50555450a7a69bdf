package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "festgate_session", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxScreenshotSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("UPSTREAM_ENDPOINT_URL", "https://example.com/exec")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WHITELISTED_IPS", "10.0.0.1,10.0.0.2")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, ":9000", cfg.GetServerAddress())
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "https://example.com/exec", cfg.Upstream.EndpointURL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.WhitelistedIPs)
}

func TestModeHelpers(t *testing.T) {
	cfg := &Config{GinMode: "release"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.GinMode = "debug"
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsDevelopment())
}
