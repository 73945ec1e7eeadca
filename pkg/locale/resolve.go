package locale

import "slices"

// Resolve returns the languages to search, in priority order.
//
// An empty configured list means no explicit preference: the result comes
// from the environment and configured is left alone. Otherwise Fallback is
// appended to *configured in place, so English pages stay searchable, and a
// copy of the extended list is returned.
//
// Neither branch removes duplicates.
func Resolve(configured *[]string, lookup LookupFunc) []string {
	if configured == nil || len(*configured) == 0 {
		return FromEnv(lookup)
	}

	*configured = append(*configured, Fallback)
	return slices.Clone(*configured)
}
