package locale

import "os"

// Environment variables consulted during resolution.
const (
	// EnvLang holds the primary locale, e.g. "en_US.UTF-8".
	EnvLang = "LANG"
	// EnvLanguage holds a colon-separated list of preferred languages.
	EnvLanguage = "LANGUAGE"
)

// LookupFunc retrieves the value of an environment variable.
// It has the signature of os.LookupEnv, which is used when nil is passed.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a static map.
// Keys missing from the map are reported as unset.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// Source holds the raw locale values read from the environment.
type Source struct {
	// Primary is the verbatim LANG value.
	Primary string
	// Override is the verbatim LANGUAGE value. An unset variable reads as "".
	Override string
	// HasPrimary reports whether LANG was set at all.
	HasPrimary bool
}

// ReadEnv reads LANG and LANGUAGE through lookup.
func ReadEnv(lookup LookupFunc) Source {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	primary, hasPrimary := lookup(EnvLang)
	override, _ := lookup(EnvLanguage)

	return Source{
		Primary:    primary,
		Override:   override,
		HasPrimary: hasPrimary,
	}
}
