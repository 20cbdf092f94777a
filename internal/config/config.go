// Package config loads the service configuration.
//
// Precedence (low -> high): defaults, optional YAML file named by
// TODO_CONFIG, environment variables. A .env file, when present, is merged
// into the process environment before the env layer is read.
package config

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	// DatabaseURL wins over the DB_* parts when set.
	DatabaseURL string `koanf:"database_url"`
	DBUser      string `koanf:"db_user"`
	DBPassword  string `koanf:"db_password"`
	DBHost      string `koanf:"db_host"`
	DBPort      string `koanf:"db_port"`
	DBName      string `koanf:"db_name"`

	JWTSecret string        `koanf:"jwt_secret"`
	JWTTTL    time.Duration `koanf:"jwt_ttl"`

	AppPort  string `koanf:"app_port"`
	LogLevel string `koanf:"log_level"`

	// NATSURL and OTELEndpoint are optional; empty disables the integration.
	NATSURL      string `koanf:"nats_url"`
	OTELEndpoint string `koanf:"otel_exporter_otlp_endpoint"`

	RateLimitMax        int `koanf:"rate_limit_max"`
	RateLimitExpiration int `koanf:"rate_limit_expiration"`
}

func New() *Config {
	return &Config{
		DBHost:              "localhost",
		DBPort:              "5432",
		JWTTTL:              time.Hour,
		AppPort:             "8080",
		LogLevel:            "info",
		RateLimitExpiration: 60,
	}
}

// DSN returns DatabaseURL, or a postgres URL assembled from the DB_* parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}

	return u.String()
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET must be set", ErrInvalidConfig)
	}
	if c.DatabaseURL == "" && (c.DBUser == "" || c.DBName == "") {
		return fmt.Errorf("%w: DATABASE_URL or DB_USER and DB_NAME must be set", ErrInvalidConfig)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("%w: JWT_TTL must be positive", ErrInvalidConfig)
	}
	if c.AppPort == "" {
		return fmt.Errorf("%w: APP_PORT must not be empty", ErrInvalidConfig)
	}

	return nil
}
