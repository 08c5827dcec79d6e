package util

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger: JSON lines in production, text
// with timestamps elsewhere. An unknown level falls back to info.
func NewLogger(env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.WithField("level", level).Warn("unknown LOG_LEVEL, defaulting to info")
	}
	logger.SetLevel(lvl)
	return logger
}
