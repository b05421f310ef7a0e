// Package config handles application configuration and setup
package config

import (
	"io"
	"os"

	"github.com/retroenv/paritygrid/internal/options"
	"github.com/retroenv/paritygrid/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Log records go to
// stderr, stdout only carries the grid.
func CreateLogger(debug, quiet bool) *log.Logger {
	return newLogger(os.Stderr, debug, quiet)
}

func newLogger(output io.Writer, debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = output
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateWriter creates the row writer for the style selected in the options.
func CreateWriter(w io.Writer, opts options.Program) (*writer.Writer, error) {
	style, err := writer.ParseStyle(opts.Style)
	if err != nil {
		return nil, err
	}
	return writer.New(w, style), nil
}
