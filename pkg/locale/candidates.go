package locale

import "strings"

// Fallback is the language appended to every resolved list.
const Fallback = "en"

// Candidates derives the ordered language list from raw locale values.
//
// Without a primary locale the result is always [en], whatever the override
// list holds. Otherwise the override entries are processed in order, followed
// by the primary locale:
//   - "ll_CC..." (five bytes or more, '_' at index 2) yields "ll_CC" then "ll"
//   - "ll" (exactly two bytes) yields itself
//   - anything else is skipped
//
// Fallback closes the list. Duplicates are preserved.
func Candidates(src Source) []string {
	if !src.HasPrimary {
		return []string{Fallback}
	}

	tokens := strings.Split(src.Override, ":")
	tokens = append(tokens, src.Primary)

	result := make([]string, 0, 2*len(tokens)+1)
	for _, tok := range tokens {
		switch {
		case len(tok) >= 5 && tok[2] == '_':
			result = append(result, tok[:5], tok[:2])
		case len(tok) == 2:
			result = append(result, tok)
		}
	}

	return append(result, Fallback)
}

// FromEnv reads the locale variables through lookup and returns their candidates.
func FromEnv(lookup LookupFunc) []string {
	return Candidates(ReadEnv(lookup))
}
