package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	envLogLevel  = "NACL_LOG_LEVEL"
	envLogFormat = "NACL_LOG_FORMAT"
)

// Config holds the settings shared by every subcommand.
type Config struct {
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns warn-level text logging, overridden by the
// environment when set.
func DefaultConfig() Config {
	cfg := Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}

// Apply configures the global logrus logger.
func (c Config) Apply() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.LogFormat)
	}

	logrus.SetLevel(level)
	return nil
}
