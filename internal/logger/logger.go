// Package logger builds the structured logger used by both programs.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────────────────────
// New returns a *slog.Logger configured for env, writing to w.
//
//	prod    → JSON at INFO
//	staging → JSON at DEBUG
//	other   → text at DEBUG
//
// console is true when w is the terminal the menu is drawn on (no log file
// configured). Both programs print their menu to stdout and the log to
// stderr, and a terminal shows the two streams mixed together, so a console
// logger only lets WARN and ERROR through whatever env says.
//
// Every record carries the program name and a short session id so runs can
// be told apart in a shared log file.
// ─────────────────────────────────────────────────────────────────────────────
func New(env, program string, w io.Writer, console bool) *slog.Logger {
	level := slog.LevelDebug
	if env == "prod" {
		level = slog.LevelInfo
	}
	if console {
		level = slog.LevelWarn
	}

	var handler slog.Handler
	switch env {
	case "prod", "staging":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(
		slog.String("program", program),
		slog.String("session", SessionID()),
	)
}

// SessionID returns the first 8 characters of a random UUID.
func SessionID() string {
	return uuid.New().String()[:8]
}

// Open returns the log destination: the file at path (appended, created if
// needed) or stderr when path is empty. The returned close func is never nil.
func Open(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logger.Open: %w", err)
	}
	return f, f.Close, nil
}
