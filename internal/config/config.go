package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	DefaultRoot         = "."
	DefaultAddr         = "localhost:3001"
	DefaultRestartStop  = `pkill -f "vitepress dev"`
	DefaultRestartStart = "pnpm docs:dev"
)

// Root returns the site root from NOTEDOCK_ROOT, falling back to DefaultRoot.
func Root() string {
	return env("NOTEDOCK_ROOT", DefaultRoot)
}

// Addr returns the HTTP listen address from NOTEDOCK_ADDR.
func Addr() string {
	return env("NOTEDOCK_ADDR", DefaultAddr)
}

// RestartStop returns the command that stops the site renderer.
// Setting NOTEDOCK_RESTART_STOP to "-" disables it.
func RestartStop() string {
	return disabled(env("NOTEDOCK_RESTART_STOP", DefaultRestartStop))
}

// RestartStart returns the command that starts the site renderer.
// Setting NOTEDOCK_RESTART_START to "-" disables it.
func RestartStart() string {
	return disabled(env("NOTEDOCK_RESTART_START", DefaultRestartStart))
}

// IndexDB returns the optional document index database path. Empty means
// no index; "auto" selects a database under the XDG data directory.
func IndexDB() string {
	return os.Getenv("NOTEDOCK_INDEX_DB")
}

// LogLevel parses NOTEDOCK_LOG_LEVEL, defaulting to info.
func LogLevel() slog.Level {
	return ParseLevel(os.Getenv("NOTEDOCK_LOG_LEVEL"))
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// NewLogger builds the text logger every binary writes to stderr
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func disabled(cmd string) string {
	if cmd == "-" {
		return ""
	}
	return cmd
}
