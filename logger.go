package hammingindex

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with hammingindex-specific context.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, uses a default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// LogAdd logs a single AddItem call.
func (l *Logger) LogAdd(key uint32, err error) {
	if err != nil {
		l.Warn("add failed", "key", key, "error", err)
		return
	}
	l.Debug("add completed", "key", key)
}

// LogBatchAdd logs an AddMany call.
func (l *Logger) LogBatchAdd(requested, added int, d time.Duration) {
	if added < requested {
		l.Warn("batch add completed with rejections",
			"requested", requested,
			"added", added,
			"rejected", requested-added,
			"duration", d,
		)
		return
	}
	l.Info("batch add completed", "added", added, "duration", d)
}

// LogQuery logs a range query, bruteforce or optimized.
func (l *Logger) LogQuery(kind string, r float32, candidates, results int, d time.Duration, err error) {
	if err != nil {
		l.Warn("query failed", "kind", kind, "range", r, "error", err)
		return
	}
	l.Debug("query completed",
		"kind", kind,
		"range", r,
		"candidates", candidates,
		"results", results,
		"duration", d,
	)
}

// LogClear logs a Clear call.
func (l *Logger) LogClear(itemsCleared int) {
	l.Info("index cleared", "items_cleared", itemsCleared)
}
