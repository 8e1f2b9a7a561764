package extremal

import (
	"fmt"
	"log/slog"
)

// Option configures an Engine.
// Invalid values panic in the option constructor.
type Option func(*Options)

// Options holds the resolved engine configuration.
type Options struct {
	// Workers is the number of parents expanded concurrently (≥ 1).
	Workers int
	// MaxOrder, if > 0, is the largest order the search may examine.
	MaxOrder int
	// Progress is called after every level, in order.
	Progress func(Level)
	// Logger receives level and run events.
	Logger *slog.Logger
	// Metrics, if non-nil, is updated after every level.
	Metrics *Metrics
	// Checkpoint, if non-nil, stores every level and seeds resumption.
	Checkpoint Checkpoint
}

// DefaultOptions returns sequential expansion, no order limit, no hooks
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Progress: func(Level) {},
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithWorkers expands up to w parents at a time. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("extremal: WithWorkers(%d): need w ≥ 1", w))
	}
	return func(o *Options) { o.Workers = w }
}

// WithMaxOrder bounds the orders examined; 0 removes the bound.
// Panics if m < 0.
func WithMaxOrder(m int) Option {
	if m < 0 {
		panic(fmt.Sprintf("extremal: WithMaxOrder(%d): need m ≥ 0", m))
	}
	return func(o *Options) { o.MaxOrder = m }
}

// WithProgress registers fn to observe finished levels. nil is ignored.
func WithProgress(fn func(Level)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records level statistics in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithCheckpoint saves every level to cp and resumes from it.
func WithCheckpoint(cp Checkpoint) Option {
	return func(o *Options) { o.Checkpoint = cp }
}
