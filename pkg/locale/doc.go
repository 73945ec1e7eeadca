// Package locale resolves the ordered list of languages a tldr client searches
// when looking up pages.
//
// Resolution follows the language section of the tldr client specification:
// the LANG variable names the primary locale and the colon-separated LANGUAGE
// variable lists preferred languages ahead of it. Every entry of the form
// ll_CC yields both ll_CC and ll, two-letter entries are taken as is, and
// anything else is skipped. English is always appended as the last fallback.
//
// # Basic Usage
//
//	langs := locale.FromEnv(nil) // reads LANG and LANGUAGE from the process environment
//	// LANG=en_US.UTF-8 LANGUAGE=de_DE.UTF-8:pl:en
//	// Output: [de_DE de pl en en_US en en]
//
// The returned list is a priority list, not a set. Duplicates are kept on
// purpose; callers pick a deduplication strategy from package dedup that fits
// their pass (dedup.Stable for page search, dedup.Sorted for cache updates).
//
// # Configured Languages
//
// A non-empty configured list takes precedence over the environment:
//
//	configured := []string{"fr", "de"}
//	langs := locale.Resolve(&configured, nil)
//	// configured and langs are now [fr de en]
//
// # Page Directories
//
// Languages map onto page directories of the cache with LangDirs:
//
//	locale.LangDirs([]string{"de", "en"}) // [pages.de pages.en]
//
// # Testing
//
// All functions reading the environment accept a LookupFunc. Pass a map-backed
// lookup in tests instead of mutating the process environment:
//
//	env := locale.MapLookup(map[string]string{"LANG": "it"})
//	locale.FromEnv(env) // [it en]
package locale
