package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is usable before InitLogger runs (at logrus defaults), so config
// loading can log through it.
var Logger = logrus.New()

type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook interface.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook interface.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger applies the configured level and tags every line with the
// app name. The level string comes from config, not the environment.
func InitLogger(appName, logLevel string) {
	Logger.SetOutput(os.Stdout)

	logLevelStr := strings.ToLower(logLevel)
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		Logger.Warnf("Invalid log level '%s', defaulting to INFO", logLevelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Logger.AddHook(&appNameHook{appName})
}
