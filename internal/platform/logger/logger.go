package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON output so on-site terminals can ship
// logs straight into the venue's aggregation.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("GATECHECK_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
