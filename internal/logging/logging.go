// Package logging builds the logrus logger used for run-time messages.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/donaldgifford/carrylint/internal/config"
)

// New returns a logger writing to w with the level and format from cfg.
func New(cfg config.LoggingConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    true,
		})
	}
	return logger, nil
}

// Discard returns a logger that drops everything. Used by tests and
// library callers that do not care about run-time messages.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
