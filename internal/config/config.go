// Package config loads linsync settings from the environment.
package config

import (
	"fmt"
	"os"
)

// Verbosity selects how much the CLI reports while it works.
type Verbosity string

const (
	// VerbosityNormal shows only essential output
	VerbosityNormal Verbosity = "normal"
	// VerbosityVerbose includes operation descriptions and timing
	VerbosityVerbose Verbosity = "verbose"
	// VerbosityDebug provides full debug logging
	VerbosityDebug Verbosity = "debug"
)

// Config carries everything the CLI needs to talk to Linear.
type Config struct {
	// LinearAPIKey authenticates requests against the Linear API
	LinearAPIKey string

	// Verbosity controls output level
	Verbosity Verbosity
}

// New reads configuration from environment variables. The API key is
// required; there is no unauthenticated mode.
func New() (*Config, error) {
	apiKey := os.Getenv("LINEAR_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("LINEAR_API_KEY environment variable is required")
	}

	verbosity := Verbosity(os.Getenv("LINSYNC_VERBOSITY"))
	switch verbosity {
	case "":
		verbosity = VerbosityNormal
	case VerbosityNormal, VerbosityVerbose, VerbosityDebug:
	default:
		return nil, fmt.Errorf("LINSYNC_VERBOSITY must be one of: normal, verbose, debug; got: %s", verbosity)
	}

	return &Config{
		LinearAPIKey: apiKey,
		Verbosity:    verbosity,
	}, nil
}

// IsVerbose reports whether verbose or debug output was requested.
func (c *Config) IsVerbose() bool {
	return c.Verbosity == VerbosityVerbose || c.Verbosity == VerbosityDebug
}

// IsDebug reports whether full debug output was requested.
func (c *Config) IsDebug() bool {
	return c.Verbosity == VerbosityDebug
}
