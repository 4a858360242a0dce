// Package logger provides structured logging for the linsync CLI. A
// zap backend carries the structured output; a plain text logger
// remains as the fallback when zap cannot be constructed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level orders the plain text severities.
type Level int

const (
	DebugLevel Level = iota // everything
	InfoLevel               // info, warnings, and errors
	ErrorLevel              // errors only
)

// timestampLayout stamps plain text lines and the zap console encoder.
const timestampLayout = "2006-01-02 15:04:05.000"

// Logger is the logging handle handed around the CLI. When the zap
// backend is present it does the work; otherwise messages go through
// the plain text path.
type Logger struct {
	level  Level
	output io.Writer
	fields map[string]interface{}
	mu     sync.Mutex
	zap    *ZapLogger
}

var (
	globalMu     sync.Mutex
	globalLogger = defaultLogger()
)

func defaultLogger() *Logger {
	if zapLogger, err := NewZapLoggerFromEnv(); err == nil {
		return &Logger{zap: zapLogger}
	}
	return New(InfoLevel)
}

// New builds a plain text logger that writes to stderr.
func New(level Level) *Logger {
	return &Logger{level: level, output: os.Stderr, fields: map[string]interface{}{}}
}

// SetOutput redirects the plain text path, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// WithField attaches one field to every message the returned logger
// emits.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	if l.zap != nil {
		return l.zap.WithField(key, value)
	}
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields attaches all the given fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	if l.zap != nil {
		return l.zap.WithFields(fields)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{level: l.level, output: l.output, fields: merged}
}

// log writes one plain text line. Fields come out in sorted key order
// so output stays stable across runs.
func (l *Logger) log(level Level, tag, msg string) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	b.WriteString(time.Now().Format(timestampLayout))
	b.WriteByte(' ')
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
	}

	_, _ = fmt.Fprintln(l.output, b.String())
}

// Debug emits msg at debug level.
func (l *Logger) Debug(msg string) {
	if l.zap == nil {
		l.log(DebugLevel, "[DEBUG]", msg)
		return
	}
	l.zap.Debug(msg)
}

// Debugf emits a printf-formatted message at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.zap == nil {
		l.log(DebugLevel, "[DEBUG]", fmt.Sprintf(format, args...))
		return
	}
	l.zap.sugar.Debugf(format, args...)
}

// Info emits msg at info level.
func (l *Logger) Info(msg string) {
	if l.zap == nil {
		l.log(InfoLevel, "[INFO]", msg)
		return
	}
	l.zap.Info(msg)
}

// Infof emits a printf-formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.zap == nil {
		l.log(InfoLevel, "[INFO]", fmt.Sprintf(format, args...))
		return
	}
	l.zap.sugar.Infof(format, args...)
}

// Warn emits msg as a warning. The plain text path has no separate
// warn level; warnings pass whenever info does.
func (l *Logger) Warn(msg string) {
	if l.zap == nil {
		l.log(InfoLevel, "[WARN]", msg)
		return
	}
	l.zap.Warn(msg)
}

// Warnf emits a printf-formatted warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.zap == nil {
		l.log(InfoLevel, "[WARN]", fmt.Sprintf(format, args...))
		return
	}
	l.zap.sugar.Warnf(format, args...)
}

// Error emits msg at error level.
func (l *Logger) Error(msg string) {
	if l.zap == nil {
		l.log(ErrorLevel, "[ERROR]", msg)
		return
	}
	l.zap.Error(msg)
}

// Errorf emits a printf-formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.zap == nil {
		l.log(ErrorLevel, "[ERROR]", fmt.Sprintf(format, args...))
		return
	}
	l.zap.sugar.Errorf(format, args...)
}

// Timed starts measuring an operation. Call Done or DoneWithError on
// the result.
func (l *Logger) Timed(op string) *TimedLogger {
	l.WithField("operation", op).Debug("Operation started")
	return &TimedLogger{logger: l, start: time.Now(), op: op}
}

// TimedLogger tracks the duration of one operation.
type TimedLogger struct {
	logger *Logger
	start  time.Time
	op     string
}

// Done records the operation as completed.
func (t *TimedLogger) Done() {
	t.finish(nil)
}

// DoneWithError records the outcome, as a failure when err is non-nil.
func (t *TimedLogger) DoneWithError(err error) {
	t.finish(err)
}

func (t *TimedLogger) finish(err error) {
	elapsed := time.Since(t.start)
	entry := t.logger.WithFields(map[string]interface{}{
		"operation":   t.op,
		"duration":    elapsed,
		"duration_ms": durationMs(elapsed),
	})
	if err != nil {
		entry.WithField("error", err).Error("Operation failed")
		return
	}
	entry.Debug("Operation completed")
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// GetLogger hands back the process-wide logger.
func GetLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalLogger
}

// SetLogger swaps the process-wide logger.
func SetLogger(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// LevelFromString maps a level name to a Level, defaulting to info.
func LevelFromString(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	}
	return InfoLevel
}

// NewTestLogger builds a debug-level plain text logger for tests.
func NewTestLogger() *Logger {
	return New(DebugLevel)
}
