package logger

import (
	"log/slog"
	"os"
	"strings"
)

// HandlerFactory builds a slog.Handler for the resolved level.
type HandlerFactory func(level slog.Level) slog.Handler

func New(level string, handler HandlerFactory) *slog.Logger {
	return slog.New(handler(ParseLevel(level)))
}

// ForFormat picks the handler factory for a LOGFORMAT value.
// Anything other than "text" gets the Cloud Run JSON handler.
func ForFormat(format string) HandlerFactory {
	if strings.EqualFold(format, "text") {
		return NewTextHandler
	}
	return NewCloudRunHandler
}

// NewTextHandler writes human readable lines to stderr for local runs.
func NewTextHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
}

func ParseLevel(level string) slog.Level {
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
