// Package logging configures the process-wide slog logger for the lifemcp
// servers. Handlers always write to stderr: in stdio mode stdout carries the
// MCP protocol stream and must stay clean.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a LOG_LEVEL string into a [slog.Level].
// Supported values: DEBUG, INFO, WARN, WARNING, ERROR (case-insensitive,
// surrounding whitespace ignored). An empty value means INFO; unknown values
// fall back to INFO with a warning printed to stderr.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using INFO\n", level)
		return slog.LevelInfo
	}
}

// Setup installs a text handler on stderr at the given level as the default
// slog logger and returns it.
func Setup(level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}
