package circuit

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the builder's field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// ForMode returns a child logger tagged with the build mode.
func (l *Logger) ForMode(m Mode) *Logger {
	return &Logger{Logger: l.With("mode", string(m))}
}

// LogRound records one completed round at Debug.
func (l *Logger) LogRound(ctx context.Context, link Link, largest int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.LogAttrs(ctx, slog.LevelDebug, "round",
		slog.Int("round", link.Round),
		slog.String("from", link.From.String()),
		slog.String("to", link.To.String()),
		slog.Int64("dist", link.Dist),
		slog.Bool("merged", link.Merged),
		slog.Int("largest", largest),
	)
}
