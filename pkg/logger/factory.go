package logger

import (
	"io"
	"log/slog"
)

// Option configures the logger built by New.
type Option func(*options)

type options struct {
	debug io.Writer
	level slog.Level
}

// WithLevel sets the minimum level printed on the console.
// Default: slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithDebugWriter additionally writes every record, down to debug level, as
// JSON to w. The debug stream is independent of the console's quiet setting.
func WithDebugWriter(w io.Writer) Option {
	return func(o *options) {
		o.debug = w
	}
}

// New creates a logger printing through console.
func New(console *Console, opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}

	var debug slog.Handler
	if o.debug != nil {
		debug = slog.NewJSONHandler(o.debug, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(newMultiHandler(NewConsoleHandler(console, o.level), debug))
}
