package config

import (
	"os"
	"testing"
)

// TestNewConfig tests the creation of a new Config instance with default values
func TestNewConfig(t *testing.T) {
	_ = os.Setenv("LINEAR_API_KEY", "lin_api_test123")
	_ = os.Unsetenv("LINSYNC_VERBOSITY")
	defer func() { _ = os.Unsetenv("LINEAR_API_KEY") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	if cfg.LinearAPIKey != "lin_api_test123" {
		t.Errorf("LinearAPIKey = %q, want %q", cfg.LinearAPIKey, "lin_api_test123")
	}

	if cfg.Verbosity != VerbosityNormal {
		t.Errorf("Verbosity = %q, want %q", cfg.Verbosity, VerbosityNormal)
	}
}

// TestLinearAPIKeyRequired tests that LinearAPIKey is required
func TestLinearAPIKeyRequired(t *testing.T) {
	_ = os.Unsetenv("LINEAR_API_KEY")
	_ = os.Unsetenv("LINSYNC_VERBOSITY")

	_, err := New()
	if err == nil {
		t.Fatal("Expected error when LINEAR_API_KEY is not set, got nil")
	}
	if err.Error() != "LINEAR_API_KEY environment variable is required" {
		t.Errorf("Expected specific error message, got: %v", err)
	}
}

// TestVerbosityFromEnvironment tests loading the verbosity setting
func TestVerbosityFromEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      Verbosity
		wantError bool
	}{
		{name: "normal", value: "normal", want: VerbosityNormal},
		{name: "verbose", value: "verbose", want: VerbosityVerbose},
		{name: "debug", value: "debug", want: VerbosityDebug},
		{name: "empty defaults to normal", value: "", want: VerbosityNormal},
		{name: "invalid value", value: "loud", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LINEAR_API_KEY", "lin_api_test123")
			t.Setenv("LINSYNC_VERBOSITY", tt.value)

			cfg, err := New()
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected error for invalid verbosity, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() returned unexpected error: %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %q, want %q", cfg.Verbosity, tt.want)
			}
		})
	}
}

// TestVerbosityHelpers tests the IsVerbose and IsDebug helpers
func TestVerbosityHelpers(t *testing.T) {
	tests := []struct {
		verbosity   Verbosity
		wantVerbose bool
		wantDebug   bool
	}{
		{VerbosityNormal, false, false},
		{VerbosityVerbose, true, false},
		{VerbosityDebug, true, true},
	}

	for _, tt := range tests {
		cfg := &Config{Verbosity: tt.verbosity}
		if got := cfg.IsVerbose(); got != tt.wantVerbose {
			t.Errorf("IsVerbose() with %q = %v, want %v", tt.verbosity, got, tt.wantVerbose)
		}
		if got := cfg.IsDebug(); got != tt.wantDebug {
			t.Errorf("IsDebug() with %q = %v, want %v", tt.verbosity, got, tt.wantDebug)
		}
	}
}
