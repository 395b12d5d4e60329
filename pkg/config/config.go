package config

import (
	"fmt"
	"time"

	"github.com/mcuadros/go-defaults"
	"github.com/sirupsen/logrus"
)

// Output formats
const (
	FormatTree = "tree"
	FormatJSON = "json"
)

// Config holds application configuration
type Config struct {
	LogLevel     logrus.Level `json:"log_level"`
	OutputFormat string       `json:"output_format" default:"tree"` // tree, json
	Color        bool         `json:"color" default:"true"`
	IndentJSON   bool         `json:"indent_json" default:"true"`
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	cfg.LogLevel = logrus.InfoLevel
	return cfg
}

// SetLogLevel parses one of debug, info, warn or error
func (c *Config) SetLogLevel(name string) error {
	switch name {
	case "debug":
		c.LogLevel = logrus.DebugLevel
	case "info":
		c.LogLevel = logrus.InfoLevel
	case "warn":
		c.LogLevel = logrus.WarnLevel
	case "error":
		c.LogLevel = logrus.ErrorLevel
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", name)
	}
	return nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case FormatTree, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be %s or %s)", c.OutputFormat, FormatTree, FormatJSON)
	}
}

// NewLogger creates a configured logger instance
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)

	// Use structured logging format
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return logger
}
