package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/locale"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("configured languages get english appended", func(t *testing.T) {
		t.Parallel()
		configured := []string{"fr", "de"}
		env := locale.MapLookup(map[string]string{"LANG": "it"})

		got := locale.Resolve(&configured, env)

		require.Equal(t, []string{"fr", "de", "en"}, got)
		require.Equal(t, []string{"fr", "de", "en"}, configured)
	})

	t.Run("returned list is a copy", func(t *testing.T) {
		t.Parallel()
		configured := []string{"fr"}

		got := locale.Resolve(&configured, locale.MapLookup(nil))
		got[0] = "pl"

		require.Equal(t, []string{"fr", "en"}, configured)
	})

	t.Run("configured english is not deduplicated", func(t *testing.T) {
		t.Parallel()
		configured := []string{"en", "de"}

		got := locale.Resolve(&configured, locale.MapLookup(nil))

		require.Equal(t, []string{"en", "de", "en"}, got)
	})

	t.Run("every call appends again", func(t *testing.T) {
		t.Parallel()
		configured := []string{"de"}

		locale.Resolve(&configured, nil)
		got := locale.Resolve(&configured, nil)

		require.Equal(t, []string{"de", "en", "en"}, got)
	})

	t.Run("empty configuration falls back to environment", func(t *testing.T) {
		t.Parallel()
		configured := []string{}
		env := locale.MapLookup(map[string]string{
			"LANG":     "cz",
			"LANGUAGE": "it:cz:de",
		})

		got := locale.Resolve(&configured, env)

		require.Equal(t, locale.FromEnv(env), got)
		require.Equal(t, []string{"it", "cz", "de", "cz", "en"}, got)
		require.Empty(t, configured)
	})

	t.Run("nil configuration falls back to environment", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"en"}, locale.Resolve(nil, locale.MapLookup(nil)))
	})
}
