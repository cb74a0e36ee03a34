package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	// Level is the minimum level to emit: "debug", "info", "warn" or
	// "error". Case-insensitive; invalid or empty defaults to info.
	Level string

	// Format selects the handler: "json" or "text". Invalid or empty
	// defaults to JSON.
	Format string
}

// NewLogger creates a slog.Logger writing to w with the configured level
// and format.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(config.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
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
