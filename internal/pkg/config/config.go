package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/FACorreiaa/facturation-pro/internal/app/models"
)

const minJWTSecretLength = 32

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type JWTConfig struct {
	SecretKey       string
	TokenExpiration time.Duration
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
}

type AuthConfig struct {
	SignInURL       string
	AfterSignOutURL string
	SessionSecret   string
}

type Config struct {
	Repositories  RepositoriesConfig
	JWT           JWTConfig
	Auth          AuthConfig
	Observability ObservabilityConfig
	ServerPort    string
	LogLevel      string
}

func Load() (*Config, error) {
	expiration, err := time.ParseDuration(getEnvOrDefault("JWT_EXPIRATION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", models.ErrValidation)
	}

	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "facturation"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: int32(getEnvIntOrDefault("POSTGRES_MAX_CONNS", 30)),
				MinConns: int32(getEnvIntOrDefault("POSTGRES_MIN_CONNS", 5)),
			},
		},
		JWT: JWTConfig{
			SecretKey:       getEnvOrDefault("JWT_SECRET_KEY", ""),
			TokenExpiration: expiration,
		},
		Auth: AuthConfig{
			SignInURL:       getEnvOrDefault("SIGN_IN_URL", "/sign-in"),
			AfterSignOutURL: getEnvOrDefault("AFTER_SIGN_OUT_URL", "/"),
			SessionSecret:   getEnvOrDefault("SESSION_SECRET", "facturation-session-secret"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "facturation-pro"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4318"),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Repositories.Postgres.Password == "" {
		return fmt.Errorf("POSTGRES_PASSWORD environment variable is required: %w", models.ErrValidation)
	}
	if len(c.JWT.SecretKey) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters: %w", minJWTSecretLength, models.ErrValidation)
	}
	if c.JWT.TokenExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive: %w", models.ErrValidation)
	}
	return nil
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
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
