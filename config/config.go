package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment     string
	Port            string
	DBUrl           string // optional; empty keeps the delivery log in memory
	AllowedOrigins  []string
	JWTSecret       string
	JWTExpiry       time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	Mail            MailConfig

	// Warnings collects problems found while loading that the caller should log
	// once its logger exists.
	Warnings []string
}

// MailConfig holds outbound email settings.
type MailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

const devJWTSecret = "dev-insecure-secret"

// IsProduction reports whether GO_ENV is "production".
func (c *Config) IsProduction() bool { return c.Environment == "production" }

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	var warnings []string
	// In production .env might not exist and we rely on system environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			warnings = append(warnings, fmt.Sprintf(".env file not found or couldn't be loaded: %v", err))
		}
	}
	cfg, err := FromEnv(os.Getenv("GO_ENV"), os.Getenv)
	if err != nil {
		return nil, err
	}
	cfg.Warnings = append(warnings, cfg.Warnings...)
	return cfg, nil
}

// FromEnv builds a Config for env using getenv to read variables.
// An empty env means development.
func FromEnv(env string, getenv func(string) string) (*Config, error) {
	explicitEnv := env != ""
	if env == "" {
		env = "development"
	}
	cfg := &Config{
		Environment:    env,
		Port:           getenv("PORT"),
		DBUrl:          getenv("DATABASE_URL"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS")),
		JWTSecret:      getenv("JWT_SECRET"),
		LogLevel:       getenv("LOG_LEVEL"),
		Mail: MailConfig{
			Provider:           strings.ToLower(strings.TrimSpace(getenv("MAIL_PROVIDER"))),
			FromAddress:        getenv("MAIL_FROM_ADDRESS"),
			FromName:           getenv("MAIL_FROM_NAME"),
			AWSRegion:          getenv("AWS_REGION"),
			AWSAccessKeyID:     getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "noop"
	}
	if cfg.Mail.AWSRegion == "" {
		cfg.Mail.AWSRegion = "us-east-1"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var err error
	if cfg.Mail.InsecureSkipVerify, err = parseBool(getenv("SES_INSECURE_SKIP_VERIFY"), false); err != nil {
		return nil, errors.New("SES_INSECURE_SKIP_VERIFY must be a boolean")
	}
	hours, err := parsePositiveInt(getenv("JWT_EXPIRY_HOURS"), 24)
	if err != nil {
		return nil, errors.New("JWT_EXPIRY_HOURS must be a positive integer")
	}
	cfg.JWTExpiry = time.Duration(hours) * time.Hour
	secs, err := parsePositiveInt(getenv("SHUTDOWN_TIMEOUT_SECONDS"), 10)
	if err != nil {
		return nil, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be a positive integer")
	}
	cfg.ShutdownTimeout = time.Duration(secs) * time.Second

	if cfg.JWTSecret == "" {
		switch {
		case cfg.IsProduction():
			return nil, errors.New("JWT_SECRET is required in production")
		case explicitEnv && (env == "development" || env == "test"):
			cfg.JWTSecret = devJWTSecret
			cfg.Warnings = append(cfg.Warnings, "JWT_SECRET not set, using the built-in development secret; tokens are forgeable")
		default:
			// Unknown or unset GO_ENV: never fall back to a secret that ships in the source.
			secret, err := randomSecret()
			if err != nil {
				return nil, fmt.Errorf("generate JWT secret: %w", err)
			}
			cfg.JWTSecret = secret
			cfg.Warnings = append(cfg.Warnings, "JWT_SECRET not set, using a random per-process secret; tokens issued elsewhere will be rejected")
		}
	}
	return cfg, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(s string, fallback bool) (bool, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseBool(s)
}

func parsePositiveInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, errors.New("invalid positive integer")
	}
	return v, nil
}
