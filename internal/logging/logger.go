package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file output.
const (
	fileMaxSizeMB  = 100
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

// Config controls logger construction.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
	// File, when set and Output is nil, sends logs to a size-rotated file.
	File    string
	Output  io.Writer
}

// NewLogger returns a structured logger with sane defaults.
// Format "json" selects the JSON handler; anything else yields text.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
		if strings.TrimSpace(cfg.File) != "" {
			out = &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    fileMaxSizeMB,
				MaxBackups: fileMaxBackups,
				MaxAge:     fileMaxAgeDays,
			}
		}
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	attrs := WithCommon(nil, cfg.Service, cfg.Version)
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
