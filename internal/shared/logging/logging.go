// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New builds a logger that writes text records at level to stdout and
// JSON records at error level to stderr
func New(level slog.Level, stdout, stderr io.Writer) *slog.Logger {
	textHandler := slog.NewTextHandler(stdout, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	return slog.New(slogmulti.Fanout(textHandler, jsonHandler))
}

// Setup installs a logger for level as the default one
func Setup(level string) *slog.Logger {
	logger := New(ParseLevel(level), os.Stdout, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps debug/info/warn/error to a slog level, info otherwise
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
