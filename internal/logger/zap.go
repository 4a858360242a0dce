package logger

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the structured backend behind Logger. It embeds the
// zap.Logger for field-style calls and keeps a sugared handle for the
// printf-style ones.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// zapLevel maps the package's Level onto zap's.
func (level Level) zapLevel() zapcore.Level {
	switch level {
	case DebugLevel:
		return zap.DebugLevel
	case ErrorLevel:
		return zap.ErrorLevel
	}
	return zap.InfoLevel
}

// NewZapLogger builds the zap backend. Development mode prints colored
// levels on a console encoder with the same timestamp layout as the
// plain text fallback; otherwise output is production JSON.
func NewZapLogger(level Level, development bool) (*ZapLogger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timestampLayout)
	}
	config.Level = zap.NewAtomicLevelAt(level.zapLevel())

	zl, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}
	return &ZapLogger{Logger: zl, sugar: zl.Sugar()}, nil
}

// NewZapLoggerFromConfig builds the backend and applies the optional
// caller and stacktrace settings on top.
func NewZapLoggerFromConfig(cfg *Config) (*ZapLogger, error) {
	logger, err := NewZapLogger(cfg.Level, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}

	var opts []zap.Option
	if cfg.Caller {
		opts = append(opts, zap.AddCaller())
	}
	if cfg.Stacktrace != "" {
		opts = append(opts, zap.AddStacktrace(stacktraceLevel(cfg.Stacktrace)))
	}
	if len(opts) > 0 {
		zl := logger.Logger.WithOptions(opts...)
		logger = &ZapLogger{Logger: zl, sugar: zl.Sugar()}
	}

	return logger, nil
}

// NewZapLoggerFromEnv builds the backend from LINSYNC_LOG_* variables.
func NewZapLoggerFromEnv() (*ZapLogger, error) {
	return NewZapLoggerFromConfig(ConfigFromEnv())
}

func stacktraceLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "error":
		return zap.ErrorLevel
	case "panic":
		return zap.PanicLevel
	}
	return zap.FatalLevel
}

// with returns a copy of the logger carrying the extra fields.
func (l *ZapLogger) with(fields ...zap.Field) *ZapLogger {
	logger := l.Logger.With(fields...)
	return &ZapLogger{Logger: logger, sugar: logger.Sugar()}
}

// WithHTTPRequest adds outbound HTTP request context.
func (l *ZapLogger) WithHTTPRequest(r *http.Request) *ZapLogger {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("host", r.URL.Host),
		zap.String("path", r.URL.Path),
		zap.Int64("content_length", r.ContentLength),
	}
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		fields = append(fields, zap.String("content_type", contentType))
	}
	return l.with(fields...)
}

// WithRequestID adds a request id.
func (l *ZapLogger) WithRequestID(requestID string) *ZapLogger {
	return l.with(zap.String("request_id", requestID))
}

// WithDuration adds elapsed-time fields.
func (l *ZapLogger) WithDuration(duration time.Duration) *ZapLogger {
	return l.with(
		zap.Duration("duration", duration),
		zap.Float64("duration_ms", durationMs(duration)),
	)
}

// WithError adds error context; a nil error adds nothing.
func (l *ZapLogger) WithError(err error) *ZapLogger {
	if err == nil {
		return l
	}
	return l.with(
		zap.Error(err),
		zap.String("error_type", fmt.Sprintf("%T", err)),
	)
}

// WithField adds one field and rewraps the result in the facade.
func (l *ZapLogger) WithField(key string, value interface{}) *Logger {
	return &Logger{zap: l.with(zap.Any(key, value))}
}

// WithFields adds all the given fields and rewraps the result in the
// facade.
func (l *ZapLogger) WithFields(fields map[string]interface{}) *Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return &Logger{zap: l.with(zapFields...)}
}
