package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPlainLoggerLevels(t *testing.T) {
	tests := []struct {
		name        string
		loggerLevel Level
		logFn       func(*Logger)
		tag         string
		wantLogged  bool
	}{
		{
			name:        "debug at debug level",
			loggerLevel: DebugLevel,
			logFn:       func(l *Logger) { l.Debug("checking plan") },
			tag:         "[DEBUG]",
			wantLogged:  true,
		},
		{
			name:        "debug suppressed at info level",
			loggerLevel: InfoLevel,
			logFn:       func(l *Logger) { l.Debug("should not appear") },
			wantLogged:  false,
		},
		{
			name:        "info at info level",
			loggerLevel: InfoLevel,
			logFn:       func(l *Logger) { l.Info("creating issue") },
			tag:         "[INFO]",
			wantLogged:  true,
		},
		{
			name:        "warn shares the info level",
			loggerLevel: InfoLevel,
			logFn:       func(l *Logger) { l.Warn("labels skipped") },
			tag:         "[WARN]",
			wantLogged:  true,
		},
		{
			name:        "info suppressed at error level",
			loggerLevel: ErrorLevel,
			logFn:       func(l *Logger) { l.Info("should not appear") },
			wantLogged:  false,
		},
		{
			name:        "error at error level",
			loggerLevel: ErrorLevel,
			logFn:       func(l *Logger) { l.Error("request failed") },
			tag:         "[ERROR]",
			wantLogged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.loggerLevel)
			logger.SetOutput(&buf)

			tt.logFn(logger)

			if !tt.wantLogged {
				if buf.Len() > 0 {
					t.Errorf("message should have been suppressed, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.tag) {
				t.Errorf("output missing %s tag: %q", tt.tag, buf.String())
			}
		})
	}
}

func TestPlainLoggerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := New(DebugLevel)
	logger.SetOutput(&buf)

	logger.Info("processing issue")
	line := buf.String()

	if !strings.Contains(line, time.Now().Format("2006-01-02")) {
		t.Error("log line should carry a date stamp")
	}
	if !strings.Contains(line, "[INFO] processing issue") {
		t.Errorf("log line should carry the tag and message, got %q", line)
	}
}

func TestPlainLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := New(DebugLevel)
	logger.SetOutput(&buf)

	logger.Debugf("created %d of %d issues", 2, 3)
	if !strings.Contains(buf.String(), "created 2 of 3 issues") {
		t.Error("Debugf should support printf-style formatting")
	}

	buf.Reset()
	logger.Errorf("request failed: %v", "connection refused")
	if !strings.Contains(buf.String(), "request failed: connection refused") {
		t.Error("Errorf should support printf-style formatting")
	}
}

func TestPlainLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(DebugLevel)
	logger.SetOutput(&buf)

	logger.WithField("issue_id", "ENG-123").Info("processing issue")
	if !strings.Contains(buf.String(), "issue_id=ENG-123") {
		t.Error("WithField should add the field to the log line")
	}

	buf.Reset()
	logger.WithFields(map[string]interface{}{
		"team":   "ENG",
		"action": "create",
		"count":  5,
	}).Debug("creating issues")

	line := strings.TrimRight(buf.String(), "\n")
	if !strings.HasSuffix(line, "action=create count=5 team=ENG") {
		t.Errorf("fields should come out in sorted key order, got %q", line)
	}
}

func TestTimedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(DebugLevel)
	logger.SetOutput(&buf)

	logger.Timed("create issue").Done()

	output := buf.String()
	if !strings.Contains(output, "Operation started") || !strings.Contains(output, "Operation completed") {
		t.Errorf("timed logger should record start and completion, got %q", output)
	}
	if !strings.Contains(output, "operation=create issue") {
		t.Errorf("timed logger should carry the operation name, got %q", output)
	}

	buf.Reset()
	logger.Timed("create issue").DoneWithError(errors.New("boom"))
	if !strings.Contains(buf.String(), "Operation failed") {
		t.Errorf("failures should be recorded, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("failure line should carry the error, got %q", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Error("GetLogger should return a non-nil logger")
	}

	orig := GetLogger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	customLogger := NewTestLogger()
	customLogger.SetOutput(&buf)

	SetLogger(customLogger)
	GetLogger().Debug("swapped in for this test")

	if !strings.Contains(buf.String(), "swapped in for this test") {
		t.Error("SetLogger should swap the logger GetLogger hands out")
	}
}

func TestLogLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"DEBUG":   DebugLevel,
		"info":    InfoLevel,
		"error":   ErrorLevel,
		"Error":   ErrorLevel,
		"invalid": InfoLevel, // unknown names default to info
		"":        InfoLevel,
	}

	for input, want := range cases {
		if got := LevelFromString(input); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", input, got, want)
		}
	}
}
