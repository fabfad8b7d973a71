package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"real-estate-listings/internal/config"
)

// New builds the application logger: JSON in production (or when forced by
// config), colored text via tint otherwise.
func New(cfg config.LoggingConfig, production bool) *slog.Logger {
	level := parseLevel(cfg.Level)

	if production || cfg.JSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
