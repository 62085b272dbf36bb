// Package config loads the service configuration from the process
// environment. Values are read once at startup and the resulting struct is
// treated as immutable; it is passed by reference into the handlers and never
// mutated afterward.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lfposadac/backclashflow/pkg/logger"
	"github.com/lfposadac/backclashflow/pkg/mailer/resend"
)

// Config holds all environment-derived settings.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"5000"`

	// APIKey is the shared secret inbound requests must present in X-API-Key.
	APIKey string `env:"API_KEY"`

	// AllowedOrigins is the CORS allowlist for browser clients.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Resend configures the outbound mail provider.
	Resend resend.Config

	// Sentry configures optional error reporting; empty DSN disables it.
	Sentry logger.SentryConfig
}

// Load reads .env (if present) and parses the environment into a Config.
// It fails fast on missing secrets so a misconfigured process never accepts
// traffic it cannot serve.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set by the platform.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var errs []error
	if cfg.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required"))
	}
	if cfg.Resend.APIKey == "" {
		errs = append(errs, errors.New("RESEND_API_KEY is required"))
	}
	if cfg.Resend.SenderEmail == "" {
		errs = append(errs, errors.New("MAIL_FROM is required"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}

	return cfg, nil
}
