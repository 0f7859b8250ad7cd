package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a slog.Logger with a JSON handler writing to w.
// The level string is parsed with ParseLevel.
func New(level string, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// ParseLevel parses a level name into a slog.Level.
// Defaults to INFO when the name is empty or unrecognized.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
