package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Redis configuration
	Redis RedisConfig

	// Upstream scripted backend
	Upstream UpstreamConfig

	// Session handoff between the registration and confirmation flows
	Session SessionConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Confirmation proof upload
	Upload UploadConfig

	// Logging
	LogLevel string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// UpstreamConfig holds the external registration backend configuration.
// The endpoint is a script-hosted web app; the API key is the shared
// secret it checks inside the request body.
type UpstreamConfig struct {
	EndpointURL string
	APIKey      string
	Timeout     time.Duration
}

// SessionConfig holds session cookie and pending-ticket lifetime settings
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled              bool          `json:"enabled"`
	WindowDuration       time.Duration `json:"window_duration"`
	DefaultRequests      int           `json:"default_requests"`
	PublicRequests       int           `json:"public_requests"`
	RegistrationRequests int           `json:"registration_requests"`
	ConfirmationRequests int           `json:"confirmation_requests"`
	HealthRequests       int           `json:"health_requests"`
	WhitelistedIPs       []string      `json:"whitelisted_ips"`
}

// UploadConfig bounds the payment screenshot upload. The file is checked
// for presence only and its bytes are discarded, but the request body
// still needs a ceiling.
type UploadConfig struct {
	MaxScreenshotSize int64
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		// Upstream scripted backend
		Upstream: UpstreamConfig{
			EndpointURL: getEnv("UPSTREAM_ENDPOINT_URL", ""),
			APIKey:      getEnv("UPSTREAM_API_KEY", "CHANGE_ME_TO_A_SECRET"),
			Timeout:     getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
		},

		// Session configuration
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "festgate_session"),
			TTL:        getDurationEnv("SESSION_TTL", 2*time.Hour),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:              getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:       getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:      getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			PublicRequests:       getIntEnv("RATE_LIMIT_PUBLIC_REQUESTS", 100),
			RegistrationRequests: getIntEnv("RATE_LIMIT_REGISTRATION_REQUESTS", 10),
			ConfirmationRequests: getIntEnv("RATE_LIMIT_CONFIRMATION_REQUESTS", 10),
			HealthRequests:       getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:       getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Upload limits
		Upload: UploadConfig{
			MaxScreenshotSize: getInt64Env("MAX_SCREENSHOT_SIZE", 10*1024*1024), // 10 MB
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getInt64Env gets an int64 environment variable with a fallback value
func getInt64Env(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
