package logger

import (
	"log/slog"
	"os"
)

// New builds the process logger. Logs go to stderr: stdout is reserved for
// the report itself.
func New(env string) *slog.Logger {
	switch env {
	case "dev":
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}
