package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tldr/pkg/digest"
	"github.com/dmitrymomot/tldr/pkg/locale"
	"github.com/dmitrymomot/tldr/pkg/pagepath"
)

// pageInfo describes a page file found in the cache.
type pageInfo struct {
	name     string
	platform string
	lang     string
	sha256   string
}

func newPageCmd(e *env, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "page FILE...",
		Short: "Describe cached page files",
		Long: `Print name, platform, language and SHA-256 of page files, tab separated.

Pages are expected at <cache>/pages.<lang>/<platform>/<name>.md. A language
of "-" means the file does not sit in a pages.<lang> directory.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd, e)
			if err != nil {
				return err
			}
			defer s.close()

			for _, path := range args {
				info, err := inspectPage(path)
				if err != nil {
					return err
				}
				s.log.Debug("inspected page",
					slog.String("path", path),
					slog.String("sha256", info.sha256),
				)
				if info.lang == "-" {
					if err := s.console.Warnf("%s is outside a pages.<lang> directory", path); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(e.stdout, "%s\t%s\t%s\t%s\n", info.name, info.platform, info.lang, info.sha256); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func inspectPage(path string) (pageInfo, error) {
	p := pagepath.Path(path)

	name, ok := p.Name()
	if !ok {
		return pageInfo{}, fmt.Errorf("%s: not a page file", path)
	}
	platform, ok := p.Platform()
	if !ok {
		return pageInfo{}, fmt.Errorf("%s: no platform directory", path)
	}

	lang := "-"
	if dir, ok := pagepath.Platform(filepath.Dir(path)); ok {
		if l, ok := locale.FromLangDir(dir); ok {
			lang = l
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return pageInfo{}, err
	}
	defer f.Close()

	sum, err := digest.SHA256HexReader(f)
	if err != nil {
		return pageInfo{}, fmt.Errorf("%s: %w", path, err)
	}

	return pageInfo{name: name, platform: platform, lang: lang, sha256: sum}, nil
}
