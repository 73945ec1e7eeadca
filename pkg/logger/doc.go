// Package logger prints diagnostics of the tldr client.
//
// Two layers are provided. Console writes the familiar CLI status lines to
// stderr:
//
//	console := logger.NewConsole(os.Stderr,
//		logger.WithQuiet(cfg.Display.Quiet),
//		logger.WithRenderer(color.NewRenderer(os.Stderr, enabled)),
//	)
//	if err := console.Warnf("page %q not found in %s", name, lang); err != nil {
//		return err
//	}
//	// Output: warning: page "tar" not found in de
//
// Every Console method returns the write error, so a broken stderr surfaces
// in the caller instead of disappearing.
//
// New wraps a Console into a *slog.Logger for code that logs structurally:
//
//	log := logger.New(console, logger.WithDebugWriter(debugFile))
//	log.Info("cache updated", slog.Int("pages", 512))
//	// Output: info: cache updated pages=512
//
// # Quiet Mode
//
// Quiet is a property of the Console value rather than process state, so
// tests and callers can run quiet and verbose consoles side by side. A quiet
// console also disables the console side of New; a debug writer keeps
// receiving records.
//
// NewNope returns a logger that drops everything.
package logger
