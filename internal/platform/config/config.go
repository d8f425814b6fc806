// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings consumed by the service at startup.
// Database parameters are read by the db package directly.
type Config struct {
	Port          string        // HTTP listen port
	JWTSecret     string        // Secret key for token signing (required)
	TokenTTL      time.Duration // Token lifetime; 0 issues tokens without expiry
	RedisAddr     string        // host:port of the Redis cache; empty disables caching
	RedisPassword string
	CacheTTL      time.Duration // TTL for cached profile reads
}

// Load reads configuration from a .env file (when present) and the process
// environment. It fails when JWT_SECRET is absent: without a signing secret
// every token operation would fail, so the process must not start.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     secret,
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 0)) * time.Hour,
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_MINUTES", 5)) * time.Minute,
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
