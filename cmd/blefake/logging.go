package main

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/blefake/pkg/config"
)

// configureLogger creates a logger with the appropriate log level based on flags.
// --log-level takes precedence over --verbose. Without either, the logger is silent.
// Log output goes to the command's stderr.
func configureLogger(cmd *cobra.Command, cfg *config.Config) (*logrus.Logger, error) {
	cfg.LogLevel = logrus.PanicLevel

	logLevelStr, _ := cmd.Flags().GetString("log-level")
	if logLevelStr != "" {
		if err := cfg.SetLogLevel(logLevelStr); err != nil {
			return nil, err
		}
	} else if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = logrus.DebugLevel
	}

	logger := cfg.NewLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	return logger, nil
}

// outputConfig builds the output configuration from the shared output flags
func outputConfig(cmd *cobra.Command, asJSON, noColor bool) (*config.Config, *logrus.Logger, error) {
	cfg := config.DefaultConfig()
	if asJSON {
		cfg.OutputFormat = config.FormatJSON
	}
	// color.NoColor is set when stdout is not a terminal
	cfg.Color = cfg.Color && !noColor && !color.NoColor
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := configureLogger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
