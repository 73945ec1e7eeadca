package logger

import "log/slog"

// NewNope creates a logger whose handler is never enabled.
// Use it where diagnostics are not wanted, e.g. in tests.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
