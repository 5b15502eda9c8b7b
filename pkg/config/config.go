package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	AI       AIConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL          string        `envconfig:"DATABASE_URL" default:"one_on_one.db"`
	MaxConns     int           `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns     int           `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate  bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	ConnectRetry time.Duration `envconfig:"DB_CONNECT_RETRY" default:"30s"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string        `envconfig:"JWT_ACCESS_SECRET" default:"dev-access-secret-change-in-production"`
	RefreshSecret string        `envconfig:"JWT_REFRESH_SECRET" default:"dev-refresh-secret-change-in-production"`
	AccessExpiry  time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"24h"`
	RefreshExpiry time.Duration `envconfig:"JWT_REFRESH_EXPIRY" default:"720h"`
}

// AIConfig holds the LLM provider settings. Both keys are optional.
type AIConfig struct {
	OpenAIKey        string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel      string        `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
	OpenAIBaseURL    string        `envconfig:"OPENAI_BASE_URL"`
	AnthropicKey     string        `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicModel   string        `envconfig:"ANTHROPIC_MODEL" default:"claude-3-5-sonnet-20241022"`
	AnthropicBaseURL string        `envconfig:"ANTHROPIC_BASE_URL"`
	Timeout          time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
	VisionTimeout    time.Duration `envconfig:"AI_VISION_TIMEOUT" default:"60s"`
}

// StorageConfig holds object storage configuration. Empty endpoint disables it.
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"calendar-screenshots"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv decodes the process environment without touching .env files.
func FromEnv() (*Config, error) {
	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.Database,
		&config.JWT,
		&config.AI,
		&config.Storage,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.IsProduction() && strings.HasPrefix(c.JWT.AccessSecret, "dev-") {
		return fmt.Errorf("JWT_ACCESS_SECRET must be set in production")
	}
	if c.IsProduction() && strings.HasPrefix(c.JWT.RefreshSecret, "dev-") {
		return fmt.Errorf("JWT_REFRESH_SECRET must be set in production")
	}
	if _, err := c.Database.Dialect(); err != nil {
		return err
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Dialect returns "postgres" or "sqlite" depending on the URL scheme.
// Anything without a scheme is treated as a SQLite file path.
func (d DatabaseConfig) Dialect() (string, error) {
	switch {
	case strings.HasPrefix(d.URL, "postgres://"), strings.HasPrefix(d.URL, "postgresql://"):
		return "postgres", nil
	case strings.HasPrefix(d.URL, "sqlite://"), strings.HasPrefix(d.URL, "file:"), !strings.Contains(d.URL, "://"):
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", d.URL)
	}
}

// DSN returns the driver specific connection string
func (d DatabaseConfig) DSN() string {
	return strings.TrimPrefix(d.URL, "sqlite://")
}

// AllowsAnyOrigin reports whether the CORS list contains the wildcard
func (s ServerConfig) AllowsAnyOrigin() bool {
	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// StorageEnabled reports whether screenshots should be archived
func (c *Config) StorageEnabled() bool {
	return c.Storage.Endpoint != ""
}
