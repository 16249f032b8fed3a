package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"subflix/pkg/config"
)

// Logger wraps logrus so call sites stay decoupled from the backend.
type Logger struct {
	entry *logrus.Logger
	file  io.Closer
}

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// NewLogger builds a logger from the log section of the configuration.
func NewLogger(cfg *config.Config) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger := &Logger{entry: l}

	if strings.ToLower(cfg.Log.Output) == "file" && cfg.Log.Filename != "" {
		f, err := os.OpenFile(cfg.Log.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			l.SetOutput(os.Stdout)
			l.Warnf("failed to open log file %s, falling back to stdout: %v", cfg.Log.Filename, err)
		} else {
			l.SetOutput(f)
			logger.file = f
		}
	} else {
		l.SetOutput(os.Stdout)
	}

	return logger
}

// SetGlobalLogger installs the process-wide logger used by the package-level helpers.
func SetGlobalLogger(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// Close flushes and closes any file sink.
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

func get() *logrus.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger != nil {
		return globalLogger.entry
	}
	return logrus.StandardLogger()
}

// Debug logs a message with structured fields at debug level.
func Debug(msg string, fields map[string]interface{}) {
	get().WithFields(fields).Debug(msg)
}

// Info logs a message with structured fields at info level.
func Info(msg string, fields map[string]interface{}) {
	get().WithFields(fields).Info(msg)
}

// Warn logs a message with structured fields at warn level.
func Warn(msg string, fields map[string]interface{}) {
	get().WithFields(fields).Warn(msg)
}

// Error logs a message with structured fields at error level.
func Error(msg string, fields map[string]interface{}) {
	get().WithFields(fields).Error(msg)
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	get().Debugf(format, args...)
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) {
	get().Infof(format, args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...interface{}) {
	get().Warnf(format, args...)
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...interface{}) {
	get().Errorf(format, args...)
}

// Fatal logs the message and exits the process.
func Fatal(msg string) {
	get().Fatal(msg)
}
