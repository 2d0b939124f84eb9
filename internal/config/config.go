// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from
// a `.env` file), loads them into structured Go types, and validates that
// required values are present so the app fails fast on bad configuration.
//
// Env vars use the ORDERKIT_ prefix and "." as the nesting delimiter:
//
//	ORDERKIT_SERVER.PORT -> server.port -> Config.Server.Port
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"..."` tags are enforced by go-playground/validator when the
// config is loaded.
//
// Observability is a pointer because it is optional: when absent,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs/traces and switch behavior per environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
// Redis is optional: when Address is empty, rate limiting and background
// jobs are disabled and the service runs with validation only.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// RateLimitConfig controls the fixed-window per-client rate limiter.
// It only takes effect when Redis is configured.
type RateLimitConfig struct {
	Enabled bool `koanf:"enabled"`

	// Requests is the number of requests allowed per window.
	Requests int `koanf:"requests" validate:"omitempty,min=1"`

	// WindowSeconds is the window length in seconds.
	WindowSeconds int `koanf:"window_seconds" validate:"omitempty,min=1"`
}

// IntegrationConfig stores third-party provider credentials.
type IntegrationConfig struct {
	// ResendAPIKey enables the order confirmation email flow.
	// Empty means email sending is disabled.
	ResendAPIKey string `koanf:"resend_api_key"`

	// EmailFrom is the From address used on outgoing email.
	EmailFrom string `koanf:"email_from"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, validates it, and applies observability defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Only env vars with the ORDERKIT_ prefix are read; the prefix is
	// stripped and the rest lowercased to form the koanf key path.
	err := k.Load(env.Provider("ORDERKIT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ORDERKIT_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry always carries
	// consistent labels, regardless of what the env supplied.
	cfg.Observability.ServiceName = "orderkit"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	// Rate limiter defaults: 60 requests per minute when enabled but left
	// unconfigured.
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 60
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}

	return cfg, nil
}
