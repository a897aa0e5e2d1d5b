package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries every knob the tracker reads from the environment.
// Variables are prefixed ASCEND_, e.g. ASCEND_JWT_SECRET, ASCEND_DB_HOST.
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	BaseURL   string `envconfig:"BASE_URL" default:"http://localhost:8080"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// DatabaseURL overrides the discrete DB_* settings when set.
	DatabaseURL          string `envconfig:"DATABASE_URL"`
	DBHost               string `envconfig:"DB_HOST" default:"localhost"`
	DBPort               int    `envconfig:"DB_PORT" default:"5432"`
	DBUser               string `envconfig:"DB_USER" default:"postgres"`
	DBPassword           string `envconfig:"DB_PASSWORD"`
	DBName               string `envconfig:"DB_NAME" default:"ascend_internal"`
	DBSSLMode            string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxOpenConns       int    `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns       int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetimeMin int    `envconfig:"DB_CONN_MAX_LIFETIME_MINUTES" default:"30"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("ASCEND", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}

// DSN assembles the postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
