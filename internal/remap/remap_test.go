package remap

import "testing"

func TestPath(t *testing.T) {
	const (
		root  = "/Users/berrio/Music"
		mount = "/Music"
	)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "under source root",
			in:   "/Users/berrio/Music/DJ Music/track.mp3",
			want: "/Music/DJ Music/track.mp3",
		},
		{
			name: "deeply nested",
			in:   "/Users/berrio/Music/a/b/c/track.flac",
			want: "/Music/a/b/c/track.flac",
		},
		{
			name: "outside source root passes through",
			in:   "/Volumes/other/track.mp3",
			want: "/Volumes/other/track.mp3",
		},
		{
			name: "dot segments resolved before prefix test",
			in:   "/Users/berrio/Music/sub/../track.mp3",
			want: "/Music/track.mp3",
		},
		{
			name: "outside path still normalized",
			in:   "/tmp/./x/../track.mp3",
			want: "/tmp/track.mp3",
		},
		{
			name: "sibling directory sharing the prefix is not remapped",
			in:   "/Users/berrio/Musical/track.mp3",
			want: "/Users/berrio/Musical/track.mp3",
		},
		{
			name: "source root itself",
			in:   "/Users/berrio/Music",
			want: "/Music",
		},
		{
			name: "relative gibberish passes through",
			in:   "not-an-absolute-path.mp3",
			want: "not-an-absolute-path.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Path(tt.in, root, mount); got != tt.want {
				t.Errorf("Path(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPathIsStable(t *testing.T) {
	// Remapping an already-remapped path must not change it again:
	// "/Music/..." does not fall under the source root.
	got := Path("/Music/DJ Music/track.mp3", "/Users/berrio/Music", "/Music")
	if got != "/Music/DJ Music/track.mp3" {
		t.Errorf("second remap changed path: %q", got)
	}
}
