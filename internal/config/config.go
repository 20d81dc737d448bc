package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Auth     AuthConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend     string // memory, file, postgres, redis or s3
	Dir         string
	RedisURL    string
	RedisPrefix string
	S3Bucket    string
	S3Region    string
	S3Prefix    string
}

// DatabaseConfig holds database-related configuration for the postgres backend.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// CatalogConfig selects the product lookup implementation.
type CatalogConfig struct {
	Mode        string // "mock" or "http"
	BaseURL     string
	Timeout     time.Duration
	MockLatency time.Duration
}

// CheckoutConfig holds the payment simulation timings.
type CheckoutConfig struct {
	PaymentDelay        time.Duration
	PaymentTimeout      time.Duration
	HistoryWriteTimeout time.Duration
}

// AuthConfig holds the backend login and account routes.
type AuthConfig struct {
	LoginURL  string
	SignupURL string
	Timeout   time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Storage: StorageConfig{
			Backend:     getEnv("STORAGE_BACKEND", "file"),
			Dir:         getEnv("STORAGE_DIR", "data/state"),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
			RedisPrefix: getEnv("REDIS_PREFIX", "scan-kart:"),
			S3Bucket:    getEnv("S3_BUCKET", ""),
			S3Region:    getEnv("S3_REGION", "eu-west-3"),
			S3Prefix:    getEnv("S3_PREFIX", "terminals/default/"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "scankart"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 5),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Catalog: CatalogConfig{
			Mode:        getEnv("CATALOG_MODE", "mock"),
			BaseURL:     getEnv("CATALOG_BASE_URL", "http://localhost:15080"),
			Timeout:     getEnvAsDuration("CATALOG_TIMEOUT", 5*time.Second),
			MockLatency: getEnvAsDuration("CATALOG_MOCK_LATENCY", 500*time.Millisecond),
		},
		Checkout: CheckoutConfig{
			PaymentDelay:        getEnvAsDuration("CHECKOUT_PAYMENT_DELAY", 2*time.Second),
			PaymentTimeout:      getEnvAsDuration("CHECKOUT_PAYMENT_TIMEOUT", 30*time.Second),
			HistoryWriteTimeout: getEnvAsDuration("CHECKOUT_HISTORY_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			LoginURL:  getEnv("AUTH_LOGIN_URL", "http://localhost:15080/api/auth/client"),
			SignupURL: getEnv("AUTH_SIGNUP_URL", "http://localhost:15080/api/clients"),
			Timeout:   getEnvAsDuration("AUTH_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Storage.Backend {
	case "memory":
	case "file":
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage directory is required for the file backend")
		}
	case "postgres":
		if err := c.Database.validate(); err != nil {
			return err
		}
	case "redis":
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("redis URL is required for the redis backend")
		}
	case "s3":
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required for the s3 backend")
		}
		if c.Storage.S3Region == "" {
			return fmt.Errorf("S3 region is required for the s3 backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be memory, file, postgres, redis, or s3)", c.Storage.Backend)
	}

	switch c.Catalog.Mode {
	case "mock":
	case "http":
		if c.Catalog.BaseURL == "" {
			return fmt.Errorf("catalog base URL is required in http mode")
		}
	default:
		return fmt.Errorf("invalid catalog mode: %s (must be mock or http)", c.Catalog.Mode)
	}

	if c.Checkout.PaymentDelay < 0 {
		return fmt.Errorf("checkout payment delay cannot be negative")
	}

	if c.Checkout.PaymentTimeout <= c.Checkout.PaymentDelay {
		return fmt.Errorf("checkout payment timeout must exceed the payment delay")
	}

	if c.Checkout.HistoryWriteTimeout <= 0 {
		return fmt.Errorf("checkout history timeout must be positive")
	}

	if c.Auth.LoginURL == "" {
		return fmt.Errorf("auth login URL is required")
	}

	if c.Auth.SignupURL == "" {
		return fmt.Errorf("auth signup URL is required")
	}

	return nil
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration ("2s", "500ms")
// or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
