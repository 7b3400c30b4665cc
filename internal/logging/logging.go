// Package logging builds the charmbracelet/log logger used across the game.
//
// The terminal belongs to the TUI while a game is running, so logs go to a
// file or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix is stamped on every log line.
const Prefix = "gradius"

// Options configures New.
type Options struct {
	Path  string // Log file path; empty discards all output
	Level string // debug, info, warn, error (default info)
}

// New creates a logger per opts. The returned closer releases the log file
// and must be called on shutdown; it is a no-op when logging is discarded.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", opts.Path, err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", opts.Path, err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything, for tests and headless use.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
