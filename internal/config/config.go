package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration, loaded from environment
// variables with sensible defaults.
type Config struct {
	AppPort string

	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string

	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	AdminEmail   string // recipient for admin notifications

	RabbitMQURL  string // empty means use the in-process notification worker
	NotifyBuffer int
}

// Load reads configuration from the environment via Viper.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "jersey_store.db")
	v.SetDefault("SMTP_SERVER", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("TO_EMAIL", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("NOTIFY_BUFFER", 64)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		SMTPServer:     v.GetString("SMTP_SERVER"),
		SMTPPort:       v.GetInt("SMTP_PORT"),
		SMTPUsername:   v.GetString("SMTP_USERNAME"),
		SMTPPassword:   v.GetString("SMTP_PASSWORD"),
		AdminEmail:     v.GetString("TO_EMAIL"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		NotifyBuffer:   v.GetInt("NOTIFY_BUFFER"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded configuration for obvious mistakes.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database DSN is required")
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.NotifyBuffer < 1 {
		return fmt.Errorf("notify buffer must be at least 1")
	}
	return nil
}
