package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the English name of a language code or tag,
// e.g. "German" for "de" or "American English" for "en_US".
// Codes that cannot be parsed are returned unchanged.
func DisplayName(code string) string {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil || tag == language.Und {
		return code
	}

	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
