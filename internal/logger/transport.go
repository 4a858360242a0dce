package logger

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transport is an http.RoundTripper that logs every outbound request
// with a generated request id, the response status, and the duration.
// Install it on the http.Client an API client sends through.
type Transport struct {
	Base   http.RoundTripper
	Logger *Logger
}

// NewTransport creates a logging transport around base. A nil base
// falls back to http.DefaultTransport and a nil logger falls back to
// the global logger.
func NewTransport(base http.RoundTripper, log *Logger) *Transport {
	return &Transport{Base: base, Logger: log}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) log() *Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return GetLogger()
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := uuid.New().String()

	// Create a logger with request context
	log := t.log()
	var reqLogger *Logger
	if log.zap != nil {
		reqLogger = &Logger{zap: log.zap.WithHTTPRequest(req).WithRequestID(requestID)}
	} else {
		reqLogger = log.WithFields(map[string]interface{}{
			"method":     req.Method,
			"host":       req.URL.Host,
			"request_id": requestID,
		})
	}

	reqLogger.Debug("Request started")

	resp, err := t.base().RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		if reqLogger.zap != nil {
			reqLogger = &Logger{zap: reqLogger.zap.WithDuration(duration).WithError(err)}
		} else {
			reqLogger = reqLogger.WithFields(map[string]interface{}{
				"duration_ms": durationMs(duration),
				"error":       err.Error(),
			})
		}
		reqLogger.Error("Request failed")
		return nil, err
	}

	// Add response fields
	if reqLogger.zap != nil {
		reqLogger = &Logger{zap: reqLogger.zap.WithDuration(duration).with(zap.Int("status", resp.StatusCode))}
	} else {
		reqLogger = reqLogger.WithFields(map[string]interface{}{
			"status":      resp.StatusCode,
			"duration_ms": durationMs(duration),
		})
	}

	// Log based on status code
	switch {
	case resp.StatusCode >= 500:
		reqLogger.Error("Request failed with server error")
	case resp.StatusCode >= 400:
		reqLogger.Warn("Request failed with client error")
	default:
		reqLogger.Debug("Request completed")
	}

	// Log slow requests at warning level
	if duration > 1*time.Second {
		reqLogger.Warnf("Slow request detected: %v", duration)
	}

	return resp, nil
}
