package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL is the root of the storefront backend, e.g. http://localhost:8080.
	APIBaseURL     string
	RequestTimeout time.Duration

	// Mock backend settings, only used by cmd/mockapi.
	MockPort      string
	MockJWTSecret string

	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment. Missing keys
// fall back to local-development defaults.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
		MockPort:        getEnv("MOCK_PORT", "8080"),
		MockJWTSecret:   getEnv("MOCK_JWT_SECRET", "parastore-dev-secret"),
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
