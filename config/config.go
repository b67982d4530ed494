package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort      string
	ServerHost      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration, used for rate limiting only
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	RateLimitRequests int
	RateLimitWindow   time.Duration

	CORSAllowedOrigins []string

	// Image storage
	S3BucketName string
	AWSRegion    string
	ImageURLTTL  time.Duration

	LogLevel  string
	LogFormat string

	// MatchLimit caps the number of recipes returned by a match request.
	// It may lower the cutoff but never raise it above DefaultMatchLimit.
	MatchLimit int
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultMatchLimit = 4
)

// LoadConfig builds a Config from the environment, falling back to Docker
// secrets for credentials that are not set directly.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	env := GetEnvironment()
	cfg := &Config{
		Environment:       env,
		ServerPort:        v.GetString("server_port"),
		ServerHost:        v.GetString("server_host"),
		ReadTimeout:       v.GetDuration("server_read_timeout"),
		WriteTimeout:      v.GetDuration("server_write_timeout"),
		ShutdownTimeout:   v.GetDuration("server_shutdown_timeout"),
		DBDriver:          strings.ToLower(v.GetString("db_driver")),
		DBHost:            v.GetString("db_host"),
		DBPort:            v.GetString("db_port"),
		DBUser:            v.GetString("db_user"),
		DBPassword:        v.GetString("db_password"),
		DBName:            v.GetString("db_name"),
		DBSSLMode:         v.GetString("db_ssl_mode"),
		DBPath:            v.GetString("db_path"),
		RedisURL:          v.GetString("redis_url"),
		RedisHost:         v.GetString("redis_host"),
		RedisPort:         v.GetString("redis_port"),
		RedisPassword:     v.GetString("redis_password"),
		RedisDB:           v.GetInt("redis_db"),
		RateLimitRequests: v.GetInt("rate_limit_requests"),
		RateLimitWindow:   v.GetDuration("rate_limit_window"),
		S3BucketName:      v.GetString("s3_bucket_name"),
		AWSRegion:         v.GetString("aws_region"),
		ImageURLTTL:       v.GetDuration("image_url_ttl"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
		MatchLimit:        v.GetInt("match_limit"),
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("cors_allowed_origins"))

	// CI injects credentials as plain environment variables; everywhere
	// else they may come from mounted secrets.
	if env != CI {
		if cfg.DBPassword == "" {
			cfg.DBPassword = readSecret("db_password")
		}
		if cfg.RedisPassword == "" {
			cfg.RedisPassword = readSecret("redis_password")
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8000")
	v.SetDefault("server_read_timeout", "15s")
	v.SetDefault("server_write_timeout", "15s")
	v.SetDefault("server_shutdown_timeout", "5s")

	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "ingrecipe")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("db_path", "ingrecipe.db")

	v.SetDefault("redis_url", "")
	v.SetDefault("redis_host", "")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("rate_limit_requests", 60)
	v.SetDefault("rate_limit_window", "1m")

	v.SetDefault("cors_allowed_origins", "https://ingrecipe.netlify.app,http://localhost:5173")

	v.SetDefault("s3_bucket_name", "")
	v.SetDefault("aws_region", "")
	v.SetDefault("image_url_ttl", "1h")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("match_limit", DefaultMatchLimit)
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a Redis endpoint was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ImageStorageEnabled reports whether recipe images live in an S3 bucket
func (c *Config) ImageStorageEnabled() bool {
	return c.S3BucketName != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
