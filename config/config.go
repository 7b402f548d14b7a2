package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "MOOLAH_"

const (
	DefaultBaseURL   = "https://api.moolah.io"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "moolah-go"

	DefaultRetryMaxDelay = 30 * time.Second
)

type Config struct {
	APIKey    string        `koanf:"api_key" validate:"required"`
	APISecret string        `koanf:"api_secret"`
	IPN       string        `koanf:"ipn"`
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
	UserAgent string        `koanf:"user_agent"`
	Retry     RetryConfig   `koanf:"retry"`
	Logger    LoggerConfig  `koanf:"logger"`
}

// RetryConfig controls the optional retry decorator around the transport.
// MaxAttempts of 1 disables retrying. MaxDelay caps a single backoff wait.
type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts" validate:"min=1"`
	BaseDelay   time.Duration `koanf:"base_delay"`
	MaxDelay    time.Duration `koanf:"max_delay"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"base_url":           DefaultBaseURL,
		"timeout":            DefaultTimeout.String(),
		"user_agent":         DefaultUserAgent,
		"retry.max_attempts": 1,
		"retry.base_delay":   "500ms",
		"retry.max_delay":    DefaultRetryMaxDelay.String(),
		"logger.level":       "info",
		"logger.format":      "text",
	}
}

// LoadConfig reads MOOLAH_* variables from the environment (and a .env file
// when present) on top of the package defaults. Nested keys use a double
// underscore, e.g. MOOLAH_RETRY__MAX_ATTEMPTS.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks the struct tags. Clients built by hand do not have to
// call it; NewClient only insists on the API key.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// NewLogger builds the slog logger described by the config.
func (c LoggerConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func (c LoggerConfig) level() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
