package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New creates a text slog.Logger writing to w at the given level.
// Level "off" discards everything.
func New(level string, w io.Writer) *slog.Logger {
	if w == nil || strings.EqualFold(level, "off") {
		return slog.New(slog.DiscardHandler)
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

// OpenFile creates a logger appending to path. The timer owns the
// terminal, so logs never go to stdout. The returned close func is always
// safe to call.
func OpenFile(level, path string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" || strings.EqualFold(level, "off") {
		return New("off", nil), noop, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f.Close, nil
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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
