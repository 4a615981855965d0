package logger

import (
	"heallink-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the bootstrap logger used before and around
// the zap application logger: driver connections, fatal startup
// errors, shutdown notices.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	bootLog := logrus.New()

	if internalConfig.App.Env != "production" {
		bootLog.SetFormatter(&logrus.TextFormatter{})
		return bootLog
	}

	bootLog.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile("heallink_bootstrap.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		bootLog.WithError(err).Warn("bootstrap log file unavailable, using stderr")
		return bootLog
	}
	bootLog.SetOutput(file)
	return bootLog
}
