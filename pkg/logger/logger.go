// Package logger provides structured logging for the cow packages and the demo
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// defaultLogger is the global logger instance
	defaultLogger = logrus.New()
)

// Fields represents a set of log fields
type Fields map[string]interface{}

func init() {
	defaultLogger.SetOutput(os.Stderr)
	defaultLogger.SetLevel(logrus.InfoLevel)
	defaultLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetOutput sets the output destination for the default logger
func SetOutput(output io.Writer) {
	defaultLogger.SetOutput(output)
}

// SetLevel sets the logging level by name, falling back to info
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		defaultLogger.SetLevel(logrus.TraceLevel)
	case "debug":
		defaultLogger.SetLevel(logrus.DebugLevel)
	case "info":
		defaultLogger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		defaultLogger.SetLevel(logrus.WarnLevel)
	case "error":
		defaultLogger.SetLevel(logrus.ErrorLevel)
	default:
		defaultLogger.SetLevel(logrus.InfoLevel)
	}
}

// ValidLevel reports whether SetLevel understands the name
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// UseJSONFormat configures the logger to use JSON formatting
func UseJSONFormat() {
	defaultLogger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// IsDebugEnabled reports whether debug entries would be emitted.
// Hot paths check it before building fields.
func IsDebugEnabled() bool {
	return defaultLogger.IsLevelEnabled(logrus.DebugLevel)
}

// WithFields returns a log entry with pre-populated fields
func WithFields(fields Fields) *logrus.Entry {
	return defaultLogger.WithFields(logrus.Fields(fields))
}

// Debugf logs a formatted message at the debug level
func Debugf(format string, args ...interface{}) {
	defaultLogger.Debugf(format, args...)
}

// Infof logs a formatted message at the info level
func Infof(format string, args ...interface{}) {
	defaultLogger.Infof(format, args...)
}

// Warnf logs a formatted message at the warn level
func Warnf(format string, args ...interface{}) {
	defaultLogger.Warnf(format, args...)
}
