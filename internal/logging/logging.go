// Package logging builds the zerolog logger. The terminal belongs to the UI,
// so log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Handle is an open log destination.
type Handle struct {
	Logger zerolog.Logger
	closer io.Closer
}

// Close flushes and closes the log file.
func (h *Handle) Close() error {
	if h == nil || h.closer == nil {
		return nil
	}
	err := h.closer.Close()
	h.closer = nil
	return err
}

// Open appends JSON log lines to path at the given level. An empty path
// yields a disabled logger.
func Open(path string, level zerolog.Level) (*Handle, error) {
	if path == "" {
		return &Handle{Logger: zerolog.Nop()}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Handle{Logger: New(file, level), closer: file}, nil
}

// New builds a logger writing to w with timestamp and caller fields.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)
}
