package logger

import (
	"os"

	"github.com/Backland-Labs/linsync/internal/config"
)

// InitializeFromConfig sets up the global logger based on the
// configuration. An explicit LINSYNC_LOG_LEVEL wins over the level
// derived from LINSYNC_VERBOSITY.
func InitializeFromConfig(cfg *config.Config) {
	var level Level
	switch {
	case cfg.IsDebug():
		level = DebugLevel
	case cfg.IsVerbose():
		level = InfoLevel
	default:
		level = ErrorLevel
	}

	logCfg := ConfigFromEnv()
	if os.Getenv("LINSYNC_LOG_LEVEL") == "" {
		logCfg.Level = level
	}

	if zapLogger, err := NewZapLoggerFromConfig(logCfg); err == nil {
		SetLogger(&Logger{zap: zapLogger})
	} else {
		// Fall back to the plain text logger
		SetLogger(New(level))
		Warn("Structured logging unavailable; using plain log output")
	}
}

// Package-level helpers that forward to the global logger.

// Debug logs a debug message on the global logger
func Debug(msg string) {
	GetLogger().Debug(msg)
}

// Debugf logs a formatted debug message on the global logger
func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

// Info logs an info message on the global logger
func Info(msg string) {
	GetLogger().Info(msg)
}

// Infof logs a formatted info message on the global logger
func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

// Warn logs a warning message on the global logger
func Warn(msg string) {
	GetLogger().Warn(msg)
}

// Warnf logs a formatted warning message on the global logger
func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

// Errorf logs a formatted error message on the global logger
func Errorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}

// WithField returns the global logger with an extra field
func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

// WithFields returns the global logger with extra fields
func WithFields(fields map[string]interface{}) *Logger {
	return GetLogger().WithFields(fields)
}
