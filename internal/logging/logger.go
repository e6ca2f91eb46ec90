// Package logging builds the structured logger the CLI runs with.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the CLI logger. The quiet default only surfaces warnings so the
// JSON field output stays usable in shell pipelines; verbose drops the level
// to debug, which includes the attacher's per-descriptor trace.
// It writes to Stderr (stdout is reserved for the field output) and
// standardizes common keys (e.g., "error" -> "err").
func New(verbose bool) *slog.Logger {
	return newLogger(os.Stderr, verbose)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
