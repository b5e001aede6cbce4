// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/modoverlap/modoverlap/internal/config"

	"github.com/charmbracelet/log"
)

// newLogger creates the stderr logger for a run. Verbose mode forces the
// debug level regardless of the configured one.
func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})

	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)

	return logger
}
