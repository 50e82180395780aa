package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const sweepIDKey ctxKey = "sweepID"

// Setup installs the default slog logger at the configured level.
// Level strings follow slog naming (DEBUG, INFO, WARN, ERROR).
func Setup(level string) {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// GenerateSweepID creates a new UUID identifying one run of a batch sweep
// or one completion-processing request, for correlating its log lines.
func GenerateSweepID() string {
	return uuid.NewString()
}

// WithSweepID returns a new context carrying the sweep ID.
func WithSweepID(ctx context.Context, sweepID string) context.Context {
	return context.WithValue(ctx, sweepIDKey, sweepID)
}

// SweepIDFromContext extracts the sweep ID from the context, if present.
func SweepIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(sweepIDKey).(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the sweep_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := SweepIDFromContext(ctx); ok {
		return slog.Default().With("sweep_id", id)
	}
	return slog.Default()
}
