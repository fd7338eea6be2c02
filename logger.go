package wordsearch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with wordsearch-specific helpers so that log
// lines use consistent field names.
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

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable lines to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithGrid adds the grid dimensions to the logger.
func (l *Logger) WithGrid(g *Grid) *Logger {
	return &Logger{
		Logger: l.Logger.With("cols", g.Cols(), "rows", g.Rows()),
	}
}

// LogBand logs the completion of one column band.
func (l *Logger) LogBand(ctx context.Context, b Band, matches int, elapsed time.Duration) {
	l.DebugContext(ctx, "band completed",
		"first_col", b.First,
		"last_col", b.Last-1,
		"matches", matches,
		"elapsed", elapsed,
	)
}

// LogSearch logs the completion of a search.
func (l *Logger) LogSearch(ctx context.Context, workers int, r *Result, elapsed time.Duration) {
	l.DebugContext(ctx, "search completed",
		"workers", workers,
		"matches", r.Count(),
		"distinct", r.Len(),
		"elapsed", elapsed,
	)
}
