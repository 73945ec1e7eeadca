package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/logger"
)

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsole(t *testing.T) {
	t.Parallel()

	t.Run("prints prefixed lines", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		c := logger.NewConsole(&buf)

		require.NoError(t, c.Warnf("page %q not found", "tar"))
		require.NoError(t, c.Infof("updated %d pages", 3))

		require.Equal(t, "warning: page \"tar\" not found\ninfo: updated 3 pages\n", buf.String())
	})

	t.Run("start and end share a line", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		c := logger.NewConsole(&buf)

		require.NoError(t, c.InfoStart("downloading... "))
		require.NoError(t, c.InfoEnd("done in %s", "1s"))

		require.Equal(t, "info: downloading... done in 1s\n", buf.String())
	})

	t.Run("quiet prints nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		c := logger.NewConsole(&buf, logger.WithQuiet(true))

		require.True(t, c.Quiet())
		require.NoError(t, c.Warnf("hidden"))
		require.NoError(t, c.Infof("hidden"))
		require.NoError(t, c.InfoStart("hidden"))
		require.NoError(t, c.InfoEnd("hidden"))
		require.Empty(t, buf.String())
	})

	t.Run("write errors propagate", func(t *testing.T) {
		t.Parallel()
		c := logger.NewConsole(failingWriter{})

		require.ErrorIs(t, c.Warnf("x"), logger.ErrWrite)
		require.ErrorIs(t, c.Infof("x"), logger.ErrWrite)
		require.ErrorIs(t, c.InfoStart("x"), logger.ErrWrite)
		require.ErrorIs(t, c.InfoEnd("x"), logger.ErrWrite)
	})

	t.Run("quiet console skips failing writer", func(t *testing.T) {
		t.Parallel()
		c := logger.NewConsole(failingWriter{}, logger.WithQuiet(true))
		require.NoError(t, c.Warnf("x"))
	})

	t.Run("colored prefixes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		r := lipgloss.NewRenderer(&buf)
		r.SetColorProfile(termenv.ANSI)
		c := logger.NewConsole(&buf, logger.WithRenderer(r))

		require.NoError(t, c.Warnf("careful"))

		out := buf.String()
		require.Contains(t, out, "\x1b[")
		require.Contains(t, out, "warning:")
		require.Contains(t, out, " careful\n")
	})
}
