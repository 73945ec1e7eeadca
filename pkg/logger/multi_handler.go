package logger

import (
	"context"
	"errors"
	"log/slog"
)

// multiHandler fans records out to several handlers, e.g. the console and a
// JSON debug log. Every enabled handler sees every record; their errors are joined.
type multiHandler struct {
	handlers []slog.Handler
}

// newMultiHandler drops nil handlers and unwraps a single remaining one.
func newMultiHandler(handlers ...slog.Handler) slog.Handler {
	clean := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			clean = append(clean, h)
		}
	}
	if len(clean) == 1 {
		return clean[0]
	}
	return &multiHandler{handlers: clean}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, rec.Level) {
			continue
		}
		if err := handler.Handle(ctx, rec.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
