/*
PURPOSE:
  Provides a structured logger for libkit.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Progress lines, not spam.

  Implementation-discovered:
  - Reports go to stdout, so logs go to stderr to keep reports pipeable.
  - CI wants JSON logs; humans want text.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - Unknown levels fall back to info.

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")

RELATED FILES:
  - internal/cli/root.go (calls Configure from flags/config)
*/

package output

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// Configure rebuilds Logger for the given level name and format ("text" or "json").
func Configure(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	SetLogger(slog.New(h))
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) slog.Level {
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
