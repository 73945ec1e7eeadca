package pagepath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/pagepath"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "pages/common/tar.md", want: "tar", wantOK: true},
		{path: "/home/user/.cache/tldr/pages.de/linux/apt-get.md", want: "apt-get", wantOK: true},
		{path: "tar.md", want: "tar", wantOK: true},
		{path: "tar", want: "tar", wantOK: true},
		{path: "docker.compose.md", want: "docker.compose", wantOK: true},
		{path: ".hidden", want: ".hidden", wantOK: true},
		{path: "pages/common/", want: "common", wantOK: true},
		{path: "", wantOK: false},
		{path: "/", wantOK: false},
		{path: "pages/..", wantOK: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, ok := pagepath.Name(tt.path)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "pages/common/tar.md", want: "common", wantOK: true},
		{path: "/srv/tldr/pages.it/osx/brew.md", want: "osx", wantOK: true},
		{path: "linux/./ip.md", want: "linux", wantOK: true},
		{path: "tar.md", wantOK: false},
		{path: "/tar.md", wantOK: false},
		{path: "./tar.md", wantOK: false},
		{path: "../tar.md", wantOK: false},
		{path: "", wantOK: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, ok := pagepath.Platform(tt.path)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	p := pagepath.Path("pages.pl/windows/dir.md")

	name, ok := p.Name()
	require.True(t, ok)
	require.Equal(t, "dir", name)

	platform, ok := p.Platform()
	require.True(t, ok)
	require.Equal(t, "windows", platform)
}
