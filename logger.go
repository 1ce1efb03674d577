package assetgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/assetgo/model"
)

// Logger wraps slog.Logger with assetgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPath adds an asset path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithEntity adds entity reference fields to the logger.
func (l *Logger) WithEntity(ref model.EntityRef) *Logger {
	return &Logger{
		Logger: l.Logger.With("entity_type", string(ref.Type), "entity_id", ref.ID),
	}
}

// LogImageResolve logs the outcome of an image resolution.
func (l *Logger) LogImageResolve(ctx context.Context, ref model.EntityRef, url string, found bool) {
	l.DebugContext(ctx, "image resolve",
		"entity_type", string(ref.Type),
		"entity_id", ref.ID,
		"url", url,
		"found", found,
	)
}

// LogCacheBust logs a cache-busted URL computation.
func (l *Logger) LogCacheBust(ctx context.Context, url, busted string, cached bool) {
	l.DebugContext(ctx, "cache bust",
		"url", url,
		"busted", busted,
		"cached", cached,
	)
}
