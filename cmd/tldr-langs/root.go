package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tldr/pkg/color"
	"github.com/dmitrymomot/tldr/pkg/config"
	"github.com/dmitrymomot/tldr/pkg/dedup"
	"github.com/dmitrymomot/tldr/pkg/duration"
	"github.com/dmitrymomot/tldr/pkg/locale"
	"github.com/dmitrymomot/tldr/pkg/logger"
)

// env holds the process surroundings a command runs in.
type env struct {
	stdout io.Writer
	stderr io.Writer
	lookup locale.LookupFunc
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	color      string
	debugLog   string
	quiet      bool
}

// session is the state a command works with once flags and config are applied.
type session struct {
	cfg     *config.Config
	console *logger.Console
	log     *slog.Logger
	close   func() error
}

func newRootCmd(e *env) *cobra.Command {
	var (
		g                   globalFlags
		dirs, unique, names bool
	)

	cmd := &cobra.Command{
		Use:   "tldr-langs",
		Short: "Print the languages searched for tldr pages",
		Long: `Print the languages searched for tldr pages, one per line, in priority order.

Languages come from cache.languages in the config file. When none are
configured they are derived from LANG and LANGUAGE. English is always last.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.open(cmd, e)
			if err != nil {
				return err
			}
			defer s.close()

			if err := reportConfig(s); err != nil {
				return err
			}

			langs := s.cfg.Languages(e.lookup)
			s.log.Debug("resolved languages", slog.Any("languages", langs))
			if unique {
				langs = dedup.Stable(langs)
			}

			for _, lang := range langs {
				line := lang
				if dirs {
					line = locale.LangDir(lang)
				}
				if names {
					line += "\t" + locale.DisplayName(lang)
				}
				if _, err := fmt.Fprintln(e.stdout, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default <user config dir>/tldr/config.yaml)")
	pf.StringVar(&g.color, "color", "", "colored output: auto, always or never (default from config)")
	pf.StringVar(&g.debugLog, "debug-log", "", "append JSON debug records to this file")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "suppress warning and info messages")

	f := cmd.Flags()
	f.BoolVar(&dirs, "dirs", false, "print page directories (pages.<lang>) instead of codes")
	f.BoolVar(&unique, "unique", false, "drop repeated languages, keeping priority order")
	f.BoolVar(&names, "names", false, "append the English name of each language")

	cmd.AddCommand(newPageCmd(e, &g))

	return cmd
}

// open loads the configuration and builds the console and logger.
func (g *globalFlags) open(cmd *cobra.Command, e *env) (*session, error) {
	path := g.configPath
	if path == "" {
		p, err := config.DefaultPath(e.lookup)
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	choice, err := cfg.ColorChoice()
	if cmd.Flags().Changed("color") {
		choice, err = color.ParseChoice(g.color)
	}
	if err != nil {
		return nil, err
	}

	enabled := color.Enabled(choice, color.LookupFunc(e.lookup), isTerminal(e.stderr))
	console := logger.NewConsole(e.stderr,
		logger.WithQuiet(g.quiet || cfg.Display.Quiet),
		logger.WithRenderer(color.NewRenderer(e.stderr, enabled)),
	)

	s := &session{cfg: cfg, console: console, close: func() error { return nil }}

	var opts []logger.Option
	if g.debugLog != "" {
		f, err := os.OpenFile(g.debugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		opts = append(opts, logger.WithDebugWriter(f))
		s.close = f.Close
	}
	s.log = logger.New(console, opts...)

	if cfg.Source == "" {
		if err := console.Infof("no config file at %s, using defaults", path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// reportConfig prints cache settings worth knowing about.
func reportConfig(s *session) error {
	c := s.cfg.Cache
	if !c.AutoUpdate {
		return nil
	}
	if c.MaxAgeHours == 0 {
		return s.console.Warnf("cache.max_age_hours is 0, pages are refreshed on every run")
	}
	return s.console.Infof("cache is refreshed every %s", duration.FormatDuration(c.MaxAge()))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && color.IsTerminal(f)
}
