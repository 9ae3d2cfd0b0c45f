// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger. The TUI owns the
// terminal, so records go to a JSON file rather than stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Options configures New.
type Options struct {
	// Level is "debug", "info", "warn" or "error".
	Level string
	// Path is the log file. Empty discards all records.
	Path string
	// Version is attached to every record when set.
	Version string
}

// ParseLevel maps a config level name to a slog.Level. Unknown names
// fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New opens the log file (append, 0600) and returns a JSON logger tagged
// with a fresh session_id. Close the returned io.Closer on exit.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Path == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(f, opts), f, nil
}

// NewWithWriter is New for an already open writer.
func NewWithWriter(w io.Writer, opts Options) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	logger := slog.New(handler).With(
		"app", "juleroerbord",
		"session_id", uuid.NewString(),
	)
	if opts.Version != "" {
		logger = logger.With("version", opts.Version)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
