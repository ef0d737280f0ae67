package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is internally
// consistent and that every value the pipeline depends on is usable
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ProviderAPIKey == "" {
		errs = append(errs, "provider API key is required")
	}
	if cfg.ProviderAPIURL == "" {
		errs = append(errs, "provider API URL is required")
	}
	if cfg.MaxInputLength <= 0 {
		errs = append(errs, "MAX_INPUT_LENGTH must be positive")
	}
	if cfg.RateLimitMax <= 0 {
		errs = append(errs, "RATE_LIMIT_MAX must be positive")
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, "RATE_LIMIT_WINDOW must be positive")
	}

	switch cfg.RateLimitBackend {
	case "memory":
	case "redis":
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			errs = append(errs, "REDIS_URL or REDIS_HOST is required when RATE_LIMIT_BACKEND is redis")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown rate limit backend: %q", cfg.RateLimitBackend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
