package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration for the environment it was loaded in
func ValidateConfig(cfg *Config) error {
	var errs []error
	fail := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.ServerPort == "" {
		fail("SERVER_PORT", "is required")
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBHost == "" {
			fail("DB_HOST", "is required for postgres")
		}
		if cfg.DBName == "" {
			fail("DB_NAME", "is required for postgres")
		}
		if cfg.DBUser == "" {
			fail("DB_USER", "is required for postgres")
		}
		if cfg.Environment == Production && cfg.DBPassword == "" {
			fail("DB_PASSWORD", "db_password secret is required in production")
		}
	case DriverSQLite:
		if cfg.DBPath == "" {
			fail("DB_PATH", "is required for sqlite")
		}
	default:
		fail("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	if cfg.RateLimitRequests <= 0 {
		fail("RATE_LIMIT_REQUESTS", "must be positive")
	}
	if cfg.RateLimitWindow <= 0 {
		fail("RATE_LIMIT_WINDOW", "must be positive")
	}
	if cfg.MatchLimit <= 0 || cfg.MatchLimit > DefaultMatchLimit {
		fail("MATCH_LIMIT", fmt.Sprintf("must be between 1 and %d", DefaultMatchLimit))
	}
	if cfg.ImageStorageEnabled() && cfg.ImageURLTTL <= 0 {
		fail("IMAGE_URL_TTL", "must be positive when S3_BUCKET_NAME is set")
	}

	return errors.Join(errs...)
}
