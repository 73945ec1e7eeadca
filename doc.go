// Package tldr is the helper layer of a tldr-pages client.
//
// The packages under pkg/ are independent and small:
//
//   - locale: ordered language fallback list from LANG, LANGUAGE and configuration
//   - dedup: order-preserving and sorted deduplication of language lists
//   - config: YAML client configuration owning the configured languages
//   - color: terminal color decision and lipgloss renderer
//   - logger: "warning:"/"info:" console output and slog integration
//   - digest: SHA-256 fingerprints of pages and archives
//   - duration: compact durations such as "1d, 12h"
//   - pagepath: page name and platform from a page file path
//
// The cmd/tldr-langs command ties them together for diagnostics:
//
//	$ LANG=en_US.UTF-8 LANGUAGE=de_DE.UTF-8:pl tldr-langs --unique --dirs
//	pages.de_DE
//	pages.de
//	pages.pl
//	pages.en_US
//	pages.en
package tldr
