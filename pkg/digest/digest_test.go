package digest_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/digest"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "known vector",
			input: "This is a test.",
			want:  "a8a2f6ebe286697c527eb35a58b5539532e9b3ae3b64d4eb0a46fb657b41562c",
		},
		{
			name:  "empty input",
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := digest.SHA256Hex([]byte(tt.input))
			require.Equal(t, tt.want, got)
			require.Len(t, got, 64)
			require.Equal(t, got, digest.SHA256Hex([]byte(tt.input)))
		})
	}
}

func TestSHA256HexReader(t *testing.T) {
	t.Parallel()

	t.Run("matches in-memory digest", func(t *testing.T) {
		t.Parallel()
		got, err := digest.SHA256HexReader(strings.NewReader("This is a test."))
		require.NoError(t, err)
		require.Equal(t, digest.SHA256Hex([]byte("This is a test.")), got)
	})

	t.Run("wraps read errors", func(t *testing.T) {
		t.Parallel()
		_, err := digest.SHA256HexReader(iotest.ErrReader(errors.New("disk gone")))
		require.ErrorIs(t, err, digest.ErrRead)
		require.ErrorContains(t, err, "disk gone")
	})
}
