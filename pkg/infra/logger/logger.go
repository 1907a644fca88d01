package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Service string
	Level   string
	// File enables an additional async JSON file sink when set.
	File string
}

func OptionsFromEnv(service string) Options {
	return Options{
		Service: service,
		Level:   os.Getenv("LOG_LEVEL"),
		File:    os.Getenv("LOG_FILE"),
	}
}

func NewLogger(opts Options) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))

	if opts.Service != "" {
		logger.AddHook(&serviceHook{service: opts.Service})
	}

	if opts.File == "" {
		logger.SetOutput(os.Stdout)
		return logger
	}

	logFile := filepath.Clean(opts.File)
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		logger.WithError(err).Warn("failed to create log directory, logging to stdout only")
		return logger
	}
	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		logger.WithError(err).Warn("failed to open log file, logging to stdout only")
		return logger
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger
}

// NewNopLogger discards everything; handy in tests.
func NewNopLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type serviceHook struct {
	service string
}

func (h *serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = h.service
	}
	return nil
}
