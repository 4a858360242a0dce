package logger

import (
	"os"
	"strings"
)

// Config holds the zap backend's settings.
type Config struct {
	Level      Level
	Format     string // "console" or "json"
	Caller     bool   // annotate entries with file:line
	Stacktrace string // level that triggers stack traces; empty keeps the encoder default
}

// ConfigFromEnv builds a logger configuration from LINSYNC_LOG_*
// environment variables. When no explicit level is set, debug
// verbosity raises the level so those runs log everything.
func ConfigFromEnv() *Config {
	level := InfoLevel
	if levelStr := os.Getenv("LINSYNC_LOG_LEVEL"); levelStr != "" {
		level = LevelFromString(levelStr)
	} else if os.Getenv("LINSYNC_VERBOSITY") == "debug" {
		level = DebugLevel
	}

	format := "console"
	if f := os.Getenv("LINSYNC_LOG_FORMAT"); f != "" {
		format = strings.ToLower(f)
	}

	return &Config{
		Level:      level,
		Format:     format,
		Caller:     os.Getenv("LINSYNC_LOG_CALLER") == "true",
		Stacktrace: strings.ToLower(os.Getenv("LINSYNC_LOG_STACKTRACE")),
	}
}

// IsDevelopment reports whether the console encoder is in use.
func (c *Config) IsDevelopment() bool {
	return c.Format == "console"
}
