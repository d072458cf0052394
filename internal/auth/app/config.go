package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer     string // Required: issuer claim for tokens
	JWTSecret  string // Required in prod: HS256 signing secret
	AccessTTL  time.Duration // Optional: access token lifetime (default: 24h)
	RefreshTTL time.Duration // Optional: refresh token lifetime (default: 7 days)

	PepperFile string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	RateLimitMax    int           // Optional: credential requests allowed per window (default: 100)
	RateLimitWindow time.Duration // Optional: credential rate limit window (default: 15m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3001)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:     os.Getenv("AUTH_ISSUER"),
		JWTSecret:  getEnvOrDefault("JWT_SECRET", "dev-secret-key"),
		AccessTTL:  getEnvDurationOrDefault("JWT_EXPIRATION", 24*time.Hour),
		RefreshTTL: getEnvDurationOrDefault("REFRESH_EXPIRATION", 7*24*time.Hour),

		PepperFile: getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"), // Default to ./pepper

		RateLimitMax:    getEnvIntOrDefault("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getEnvDurationOrDefault("RATE_LIMIT_WINDOW", 15*time.Minute),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3001),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "bychefiza-auth" // Default issuer
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
