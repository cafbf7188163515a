package progress

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Reporter receives build progress.
type Reporter interface {
	Start(total int)
	Report(done int)
	Finish()
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int) {}
func (Nop) Report(int) {}
func (Nop) Finish() {}

// Func adapts a function to Reporter; it is called from Report only.
type Func func(done, total int)

// funcReporter remembers the total for Func.
type funcReporter struct {
	fn    Func
	total int
}

// FromFunc wraps fn as a Reporter.
func FromFunc(fn Func) Reporter {
	return &funcReporter{fn: fn}
}

func (f *funcReporter) Start(total int) { f.total = total }
func (f *funcReporter) Report(done int) { f.fn(done, f.total) }
func (f *funcReporter) Finish() {}

// DefaultInterval is the minimum spacing between Log records.
const DefaultInterval = time.Second

// Log writes progress as structured log records, at most one per interval.
// The first Report after Start is always written, as is Finish.
type Log struct {
	logger  *slog.Logger
	label   string
	limiter *rate.Limiter
	total   int
	last    int
	started time.Time
}

// NewLog returns a Log reporter. A nil logger uses slog.Default(); a
// non-positive interval uses DefaultInterval.
func NewLog(logger *slog.Logger, label string, interval time.Duration) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Log{
		logger:  logger,
		label:   label,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Start records the expected total.
func (l *Log) Start(total int) {
	l.total = total
	l.last = 0
	l.started = time.Now()
	l.logger.Debug("progress start", "task", l.label, "total", l.total)
}

// Report logs done/total when the limiter allows it.
func (l *Log) Report(done int) {
	l.last = done
	if !l.limiter.Allow() {
		return
	}
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "progress",
		slog.String("task", l.label),
		slog.Int("done", done),
		slog.Int("total", l.total),
		slog.Duration("elapsed", time.Since(l.started)),
	)
}

// Finish logs the final value unconditionally.
func (l *Log) Finish() {
	l.logger.Info("progress finished",
		"task", l.label,
		"done", l.last,
		"total", l.total,
		"elapsed", time.Since(l.started),
	)
}
