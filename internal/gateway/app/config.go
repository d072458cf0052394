package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AuthServiceURL    string // Optional: auth service base URL (default: http://localhost:3001)
	UserServiceURL    string // Optional: user service base URL (default: http://localhost:3002)
	ProductServiceURL string // Optional: product service base URL (default: http://localhost:3003)
	OrderServiceURL   string // Optional: order service base URL (default: http://localhost:3004)
	PaymentServiceURL string // Optional: payment service base URL (default: http://localhost:3005)

	ProxyTimeout time.Duration // Optional: per-forward client timeout (default: 30s)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		AuthServiceURL:    getEnvOrDefault("AUTH_SERVICE_URL", "http://localhost:3001"),
		UserServiceURL:    getEnvOrDefault("USER_SERVICE_URL", "http://localhost:3002"),
		ProductServiceURL: getEnvOrDefault("PRODUCT_SERVICE_URL", "http://localhost:3003"),
		OrderServiceURL:   getEnvOrDefault("ORDER_SERVICE_URL", "http://localhost:3004"),
		PaymentServiceURL: getEnvOrDefault("PAYMENT_SERVICE_URL", "http://localhost:3005"),

		ProxyTimeout: getEnvDurationOrDefault("PROXY_TIMEOUT", 30*time.Second),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
