package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console prints human-oriented status messages with "warning:" and "info:"
// prefixes, the way a CLI reports progress on stderr.
// A quiet Console prints nothing. Write errors are returned to the caller.
type Console struct {
	mu         sync.Mutex
	w          io.Writer
	warnPrefix string
	infoPrefix string
	quiet      bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithQuiet suppresses all console output when quiet is true.
func WithQuiet(quiet bool) ConsoleOption {
	return func(c *Console) {
		c.quiet = quiet
	}
}

// WithRenderer styles the prefixes with r: bold yellow for warnings and bold cyan for info.
// Without it prefixes are printed as plain text.
func WithRenderer(r *lipgloss.Renderer) ConsoleOption {
	return func(c *Console) {
		if r == nil {
			return
		}
		c.warnPrefix = r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).Render(warnLabel)
		c.infoPrefix = r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Render(infoLabel)
	}
}

const (
	warnLabel = "warning:"
	infoLabel = "info:"
)

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	plain := lipgloss.NewRenderer(w)
	plain.SetColorProfile(termenv.Ascii)

	c := &Console{w: w}
	WithRenderer(plain)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quiet reports whether output is suppressed.
func (c *Console) Quiet() bool {
	return c.quiet
}

// Warnf prints a warning line.
func (c *Console) Warnf(format string, args ...any) error {
	return c.print(c.warnPrefix, format, args, true)
}

// Infof prints a status line.
func (c *Console) Infof(format string, args ...any) error {
	return c.print(c.infoPrefix, format, args, true)
}

// InfoStart prints a status message without a trailing newline.
// Finish the line with InfoEnd once the operation completes.
func (c *Console) InfoStart(format string, args ...any) error {
	return c.print(c.infoPrefix, format, args, false)
}

// InfoEnd completes a line started with InfoStart.
func (c *Console) InfoEnd(format string, args ...any) error {
	if c.quiet {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.w, format+"\n", args...); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func (c *Console) print(prefix, format string, args []any, newline bool) error {
	if c.quiet {
		return nil
	}

	msg := prefix + " " + fmt.Sprintf(format, args...)
	if newline {
		msg += "\n"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := io.WriteString(c.w, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
