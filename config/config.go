package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MailConfig holds the outgoing email settings.
type MailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	SESRegion             string
	SESAccessKeyID        string
	SESSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	DBUrl          string
	DBName         string
	DBTimeout      time.Duration
	AllowedOrigins []string
	Mail           MailConfig
}

const (
	defaultPort      = "8000"
	defaultDBTimeout = 10 * time.Second
)

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source; .env is for local runs.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", defaultPort),
		DBUrl:          strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBName:         strings.TrimSpace(os.Getenv("DATABASE_NAME")),
		DBTimeout:      defaultDBTimeout,
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Mail: MailConfig{
			Provider:           getEnv("MAIL_PROVIDER", "noop"),
			FromAddress:        os.Getenv("MAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("MAIL_FROM_NAME"),
			SESRegion:          os.Getenv("AWS_REGION"),
			SESAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if s := os.Getenv("DB_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_TIMEOUT %q: %w", s, err)
		}
		cfg.DBTimeout = d
	}
	if s := os.Getenv("SES_INSECURE_SKIP_VERIFY"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SES_INSECURE_SKIP_VERIFY %q: %w", s, err)
		}
		cfg.Mail.SESInsecureSkipVerify = v
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
