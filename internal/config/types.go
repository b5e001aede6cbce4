// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modoverlap/modoverlap/pkg/types"
)

const (
	// LogLevelDebug logs resolved settings and every file written.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs progress of the run.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs only suspicious input such as duplicate module names.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs only failures.
	LogLevelError LogLevel = "error"

	// maxPrecision is the largest precision that still changes float64 output.
	maxPrecision = 17
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel selects the minimum level written to stderr.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Delimiter overrides the delimiter implied by the input extension.
		Delimiter string `json:"delimiter" mapstructure:"delimiter" toml:"delimiter"`
		// Precision is the number of decimals in percentage cells.
		Precision int `json:"precision" mapstructure:"precision" toml:"precision"`
		// Workers is the number of matrix rows computed concurrently.
		Workers int `json:"workers" mapstructure:"workers" toml:"workers"`
		// SkipHeader discards the first row of the input table.
		SkipHeader bool `json:"skip_header" mapstructure:"skip_header" toml:"skip_header"`
		// TrimSpace strips whitespace around every field.
		TrimSpace bool `json:"trim_space" mapstructure:"trim_space" toml:"trim_space"`
		// Force overwrites existing output tables without asking.
		Force bool `json:"force" mapstructure:"force" toml:"force"`
		// Log configures logging
		Log LogConfig `json:"log" mapstructure:"log" toml:"log"`
		// UI configures terminal output
		UI UIConfig `json:"ui" mapstructure:"ui" toml:"ui"`
	}

	// LogConfig configures logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level" toml:"level"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Color enables styled output.
		Color bool `json:"color" mapstructure:"color" toml:"color"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Delimiter:  "",
		Precision:  6,
		Workers:    1,
		SkipHeader: false,
		TrimSpace:  true,
		Force:      false,
		Log: LogConfig{
			Level: LogLevelInfo,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate returns an error if the LogLevel is not recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// ParsedDelimiter returns the configured delimiter, or the zero Delimiter
// when the extension should decide.
func (c Config) ParsedDelimiter() (types.Delimiter, error) {
	return types.ParseDelimiter(c.Delimiter)
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.ParsedDelimiter(); err != nil {
		errs = append(errs, err)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("precision %d out of range 0-%d", c.Precision, maxPrecision))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1 (got %d)", c.Workers))
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
