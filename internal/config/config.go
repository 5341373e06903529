package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config (out-of-radius check-in alerts)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Employee sessions
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// Rate limiting for login and check-in endpoints
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"30"`

	// API keys for admin authentication
	AdminAPIKeys []string `env:"ADMIN_API_KEYS"`
}

// LoadConfig loads configuration from environment variables and a .env file
func LoadConfig() (*Config, error) {
	// Load variables from a .env file when present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		RateLimitRPS:      getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),
	}

	// Admin API keys, comma separated
	apiKeysStr := os.Getenv("ADMIN_API_KEYS")
	if apiKeysStr != "" {
		cfg.AdminAPIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.AdminAPIKeys {
			cfg.AdminAPIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or a default
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns an environment variable as float64 or a default
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or a default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
