// Package pagepath extracts page metadata from the location of a page file.
//
// Pages live at <root>/pages.<lang>/<platform>/<name>.md, so the file stem is
// the page name and the parent directory is the platform:
//
//	pagepath.Name("pages.de/common/tar.md")     // "tar", true
//	pagepath.Platform("pages.de/common/tar.md") // "common", true
package pagepath

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Path is a page file path with accessors for its page metadata.
type Path string

// Name returns the page name of p. See the package function Name.
func (p Path) Name() (string, bool) { return Name(string(p)) }

// Platform returns the platform of p. See the package function Platform.
func (p Path) Platform() (string, bool) { return Platform(string(p)) }

// Name returns the file stem of the last path component: its name without
// the final extension. A leading dot does not start an extension, so
// ".hidden" stays ".hidden". It reports false when p has no file name,
// as for "", "/" or a path ending in "..".
func Name(p string) (string, bool) {
	parts := components(p)
	if len(parts) == 0 {
		return "", false
	}

	base := parts[len(parts)-1]
	if base == ".." {
		return "", false
	}

	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base, true
}

// Platform returns the name of the directory directly containing the page.
// It reports false when p has no named parent directory.
func Platform(p string) (string, bool) {
	parts := components(p)
	if len(parts) < 2 {
		return "", false
	}

	parent := parts[len(parts)-2]
	if parent == ".." {
		return "", false
	}
	return parent, true
}

// components splits p into its named components, dropping empty and "." ones.
func components(p string) []string {
	fields := strings.FieldsFunc(p, func(r rune) bool {
		return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
	})

	parts := fields[:0]
	for _, f := range fields {
		if f != "." {
			parts = append(parts, f)
		}
	}
	return parts
}
