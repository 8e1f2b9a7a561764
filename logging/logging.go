// Package logging builds the process-wide slog.Logger from a level name
// and an output format.
//
// Text output is meant for a terminal; JSON output for log collectors.
// A zero Config gives Info-level text on stderr.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognised name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config configures New.
type Config struct {
	// Level is the minimum level emitted.
	Level slog.Level
	// Format is FormatText (default) or FormatJSON.
	Format string
	// Writer receives the records; nil means os.Stderr.
	Writer io.Writer
}

// New returns a logger for cfg. Unknown formats fall back to text.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug, info, warn or error (any case) to its slog level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("ParseLevel(%q): %w", name, ErrUnknownLevel)
}
