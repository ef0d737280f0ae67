package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Generation provider configuration
	ProviderAPIKey string
	ProviderAPIURL string
	ProviderModel  string

	// Pipeline limits
	MaxInputLength  int
	RateLimitWindow time.Duration
	RateLimitMax    int

	// Rate limit backend: "memory" or "redis"
	RateLimitBackend string

	// Redis configuration (used when RateLimitBackend is "redis")
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Logging
	LogLevel string
}

// LoadConfig creates a new Config instance with values from environment
// variables or secret files
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:       getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ProviderAPIURL:   getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		ProviderModel:    getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		RateLimitBackend: getEnv("RATE_LIMIT_BACKEND", "memory"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisURL:         os.Getenv("REDIS_URL"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.MaxInputLength, err = getEnvInt("MAX_INPUT_LENGTH", 30000); err != nil {
		return nil, err
	}
	if cfg.RateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", 20); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", time.Hour); err != nil {
		return nil, err
	}

	apiKey, err := loadProviderAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.ProviderAPIKey = apiKey

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadProviderAPIKey reads the provider API key from DEEPSEEK_API_KEY or,
// when deployed with Docker secrets, from the file named by
// DEEPSEEK_API_KEY_FILE
func loadProviderAPIKey() (string, error) {
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("DEEPSEEK_API_KEY_FILE")
	if keyFile == "" {
		return "", fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
	}

	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return key, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, value)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, value)
	}
	return d, nil
}
