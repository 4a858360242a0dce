package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newBufferLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := NewTestLogger()
	log.SetOutput(&buf)
	return log, &buf
}

// TestTransportLogsCompletedRequest tests that a successful request is
// logged with its status and a request id
func TestTransportLogsCompletedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	log, buf := newBufferLogger()
	client := &http.Client{Transport: NewTransport(nil, log)}

	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	output := buf.String()
	if !strings.Contains(output, "Request started") {
		t.Error("transport should log request start")
	}
	if !strings.Contains(output, "Request completed") {
		t.Error("transport should log request completion")
	}
	if !strings.Contains(output, "status=200") {
		t.Error("transport should log the response status")
	}
	if !strings.Contains(output, "request_id=") {
		t.Error("transport should attach a request id")
	}
}

// TestTransportLogsErrorStatuses tests the level used for 4xx and 5xx responses
func TestTransportLogsErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantMsg    string
	}{
		{name: "client error", statusCode: http.StatusNotFound, wantMsg: "Request failed with client error"},
		{name: "server error", statusCode: http.StatusBadGateway, wantMsg: "Request failed with server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			log, buf := newBufferLogger()
			client := &http.Client{Transport: NewTransport(nil, log)}

			resp, err := client.Get(server.URL)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()

			if !strings.Contains(buf.String(), tt.wantMsg) {
				t.Errorf("output missing %q:\n%s", tt.wantMsg, buf.String())
			}
		})
	}
}

// TestTransportLogsTransportFailure tests that connection failures are
// logged and the error is passed through to the caller
func TestTransportLogsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	log, buf := newBufferLogger()
	client := &http.Client{Transport: NewTransport(nil, log)}

	_, err := client.Get(server.URL)
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !strings.Contains(buf.String(), "Request failed") {
		t.Errorf("output missing failure log:\n%s", buf.String())
	}
}

// TestTransportDefaults tests the nil-base and nil-logger fallbacks
func TestTransportDefaults(t *testing.T) {
	transport := NewTransport(nil, nil)

	if transport.base() != http.DefaultTransport {
		t.Error("nil base should fall back to http.DefaultTransport")
	}
	if transport.log() == nil {
		t.Error("nil logger should fall back to the global logger")
	}
}
