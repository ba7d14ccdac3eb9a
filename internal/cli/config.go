package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Environment variables consulted for flag defaults.
const (
	EnvLogLevel  = "YAMLSIMPLE_LOG_LEVEL"
	EnvLogFormat = "YAMLSIMPLE_LOG_FORMAT"
)

// Config holds settings shared by every subcommand.
type Config struct {
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns the configuration used when neither flags nor
// environment say otherwise.
func DefaultConfig() Config {
	return Config{
		LogLevel:  envOr(EnvLogLevel, "warn"),
		LogFormat: envOr(EnvLogFormat, "text"),
	}
}

// NewConfig normalises and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	var errs []error

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel))
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envOr(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}

	return fallback
}
