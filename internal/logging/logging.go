// Package logging builds the stderr logger. stdout belongs to the result
// protocol, so nothing here ever writes there.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a slog.Logger for the given level ("debug", "info", "warn",
// "error") and format ("text" or "json"). Unknown levels fall back to warn,
// unknown formats to text. The global logger is left untouched.
func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}

	var handler slog.Handler
	if strings.EqualFold(formatStr, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
