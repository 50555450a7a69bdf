package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiterConfig() *Config {
	return &Config{
		Enabled:              true,
		WindowDuration:       time.Minute,
		DefaultRequests:      60,
		PublicRequests:       100,
		RegistrationRequests: 10,
		ConfirmationRequests: 10,
		HealthRequests:       120,
		WhitelistedIPs:       []string{"10.0.0.1"},
	}
}

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/events/:slug/register", RateLimitTypeRegistration},
		{"/api/v1/events/:slug/confirm", RateLimitTypeConfirmation},
		{"/api/v1/events", RateLimitTypePublic},
		{"/api/v1/events/:slug", RateLimitTypePublic},
		{"/somewhere/else", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getRateLimitType(tt.path), tt.path)
	}
}

func TestGetLimit(t *testing.T) {
	limiter := NewRateLimiter(nil, testLimiterConfig())

	assert.Equal(t, 100, limiter.getLimit(RateLimitTypePublic))
	assert.Equal(t, 10, limiter.getLimit(RateLimitTypeRegistration))
	assert.Equal(t, 10, limiter.getLimit(RateLimitTypeConfirmation))
	assert.Equal(t, 120, limiter.getLimit(RateLimitTypeHealth))
	assert.Equal(t, 60, limiter.getLimit(RateLimitTypeDefault))
}

func TestIsAllowed_WhitelistedIPBypassesRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, testLimiterConfig())

	result, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeRegistration)
	require.NoError(t, err)

	assert.True(t, result.Allowed)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 10, result.Remaining)
}

func TestIsAllowed_DisabledLimiterBypassesRedis(t *testing.T) {
	cfg := testLimiterConfig()
	cfg.Enabled = false
	limiter := NewRateLimiter(nil, cfg)

	result, err := limiter.IsAllowed(context.Background(), "192.168.1.5", RateLimitTypeDefault)
	require.NoError(t, err)

	assert.True(t, result.Allowed)
}
