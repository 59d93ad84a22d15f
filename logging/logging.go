package logging

import (
	"io"
	"log/slog"
	"math"
	"strings"
)

// LoggerConfig holds configuration for the trace logger.
type LoggerConfig struct {
	// Level is the minimum level to emit: "debug", "info", "warn", or
	// "error". Invalid or empty defaults to "info".
	Level string
	// AddSource attaches the logging call site to every record.
	AddSource bool
}

// NewLogger creates a slog.Logger with a JSON handler writing to w.
// Resolution traces from the loader are emitted at debug level, so pass
// Level "debug" to see them.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   config.AddSource,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// Nop returns a logger that discards every record. It is the loader's
// default when no logger is configured.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
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
