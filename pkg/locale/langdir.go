package locale

import "strings"

// LangDirPrefix prefixes a language code to form its page directory name.
const LangDirPrefix = "pages."

// LangDir returns the page directory name for lang, e.g. "pages.de".
func LangDir(lang string) string {
	return LangDirPrefix + lang
}

// LangDirs maps every language to its page directory, keeping order and duplicates.
func LangDirs(langs []string) []string {
	dirs := make([]string, len(langs))
	for i, lang := range langs {
		dirs[i] = LangDir(lang)
	}
	return dirs
}

// FromLangDir extracts the language from a page directory name.
// It reports false when dir lacks the prefix or names no language.
func FromLangDir(dir string) (string, bool) {
	lang, ok := strings.CutPrefix(dir, LangDirPrefix)
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}
