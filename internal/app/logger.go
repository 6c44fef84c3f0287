package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/franken-backoffice/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the application name and build version so
// lines from the server, seeder and backofficectl can be told apart.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg, os.Stderr)).With(
		slog.String("app", "backoffice"),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
