package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ConsoleHandler is a slog.Handler printing records through a Console.
// Records at slog.LevelWarn and above become warnings, the rest info lines.
// Attributes are appended to the message as key=value pairs.
type ConsoleHandler struct {
	console *Console
	level   slog.Leveler
	attrs   []slog.Attr
	group   string
}

// NewConsoleHandler creates a handler printing records at or above level through c.
func NewConsoleHandler(c *Console, level slog.Leveler) *ConsoleHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{console: c, level: level}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return !h.console.Quiet() && level >= h.level.Level()
}

// Handle formats rec and writes it to the console.
// A failed write is returned, not swallowed.
func (h *ConsoleHandler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.group, attr)
		return true
	})

	if rec.Level >= slog.LevelWarn {
		return h.console.Warnf("%s", b.String())
	}
	return h.console.Infof("%s", b.String())
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		if h.group != "" {
			attr.Key = h.group + "." + attr.Key
		}
		next.attrs = append(next.attrs, attr)
	}
	return &next
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}

func writeAttr(b *strings.Builder, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	switch {
	case key == "":
		key = group
	case group != "":
		key = group + "." + key
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, a := range attr.Value.Group() {
			writeAttr(b, key, a)
		}
		return
	}

	fmt.Fprintf(b, " %s=%v", key, attr.Value.Any())
}
