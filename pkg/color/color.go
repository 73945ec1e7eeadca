package color

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// EnvNoColor disables colors in Auto mode when set to a non-empty value.
const EnvNoColor = "NO_COLOR"

// Choice selects how colored output is decided.
type Choice int

const (
	// Auto colors output for terminals unless NO_COLOR is set.
	Auto Choice = iota
	// Always colors output unconditionally.
	Always
	// Never disables colored output.
	Never
)

// String returns the flag spelling of c.
func (c Choice) String() string {
	switch c {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

// ParseChoice parses "auto", "always" or "never", ignoring case and surrounding spaces.
// The empty string means Auto.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidChoice, s)
	}
}

// LookupFunc retrieves the value of an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Enabled reports whether output should be colored.
// lookup defaults to os.LookupEnv when nil.
func Enabled(choice Choice, lookup LookupFunc, isTerminal bool) bool {
	switch choice {
	case Always:
		return true
	case Never:
		return false
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		return false
	}
	return isTerminal
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a renderer writing to w. With colors enabled it emits
// basic ANSI sequences; otherwise styles render as plain text.
func NewRenderer(w io.Writer, enabled bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
