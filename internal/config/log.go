package config

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging routes slog output to a rotated log file so the TUI is
// never interleaved with log lines.
func InitLogging() {
	w := &lumberjack.Logger{
		Filename:   LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	level := slog.LevelInfo
	if os.Getenv("TRACKER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
