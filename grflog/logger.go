// Package grflog wraps the standard logger with a run-scoped prefix, the
// way a batch training job reports progress without pulling in a
// structured-logging framework it has no use for.
package grflog

import (
	"io"
	"log"
	"os"
)

// Logger prefixes every line with a run identifier (e.g. "grf[train]").
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to w (os.Stderr if w is nil) with the given
// prefix.
func New(w io.Writer, prefix string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{Logger: log.New(w, prefix+" ", log.LstdFlags)}
}

// Discard returns a Logger that drops everything it's given.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard, "", 0)}
}
