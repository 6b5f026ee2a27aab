package serato

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCrate builds a crate file on disk with the given track paths.
func writeCrate(t *testing.T, path string, tracks ...string) {
	t.Helper()

	f := New(KindCrate)
	for _, p := range tracks {
		f.AddTrack(p)
	}
	if err := f.Save(path); err != nil {
		t.Fatalf("save crate: %v", err)
	}
}

func TestCrateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Techno.crate")
	writeCrate(t, path,
		"/Users/berrio/Music/DJ Music/one.mp3",
		"/Users/berrio/Music/DJ Music/two.mp3",
	)

	f, err := OpenCrate(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	tracks := f.Tracks()
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if got := tracks[0].Relpath(); got != "/Users/berrio/Music/DJ Music/one.mp3" {
		t.Errorf("track 0 path = %q", got)
	}
	if got := tracks[1].Relpath(); got != "/Users/berrio/Music/DJ Music/two.mp3" {
		t.Errorf("track 1 path = %q", got)
	}
}

func TestSetPathPersists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.crate")
	dst := filepath.Join(dir, "out.crate")
	writeCrate(t, src, "/old/track.mp3")

	f, err := OpenCrate(src)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f.ModifyTracks(func(tr Track) {
		tr.SetPath("/Music/track.mp3")
	})
	if err := f.Save(dst); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := OpenCrate(dst)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := out.Tracks()[0].Relpath(); got != "/Music/track.mp3" {
		t.Errorf("path after rewrite = %q", got)
	}
}

func TestDatabasePlayedFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "database V2")

	db := New(KindDatabase)
	tr := db.AddTrack("/Users/berrio/Music/track.mp3")
	tr.SetBool(FieldPlayed, true)
	if err := db.Save(src); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := OpenDatabase(src)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tracks := got.Tracks()
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	if !tracks[0].Bool(FieldPlayed) {
		t.Fatal("played flag lost in round trip")
	}

	tracks[0].SetBool(FieldPlayed, false)
	if tracks[0].Bool(FieldPlayed) {
		t.Fatal("played flag still set after reset")
	}
}

func TestBoolAbsentIsFalse(t *testing.T) {
	db := New(KindDatabase)
	tr := db.AddTrack("/x.mp3")
	if tr.Bool(FieldPlayed) {
		t.Fatal("absent flag should read false")
	}
}

func TestOpenMalformed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xff, 0xff, 0xff, 0x00}},
		{"truncated header", []byte("otr")},
		{"length past end", append([]byte("vrsn"), 0xff, 0xff, 0xff, 0xff)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".crate")
			if err := os.WriteFile(path, tt.data, 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := OpenCrate(path); !errors.Is(err, ErrMalformed) {
				t.Errorf("got %v, want ErrMalformed", err)
			}
		})
	}
}

func TestUnknownFieldsRoundTrip(t *testing.T) {
	// A leaf field this package does not model must survive open+save
	// byte-for-byte.
	raw := encodeFields([]*Field{
		{Tag: "vrsn", Data: encodeText("1.0/Serato ScratchLive Crate")},
		{Tag: "osrt", Children: []*Field{{Tag: "tvcn", Data: encodeText("song")}}},
		{Tag: "otrk", Children: []*Field{
			{Tag: "ptrk", Data: encodeText("/a.mp3")},
			{Tag: "tsng", Data: encodeText("A Song")},
		}},
	})

	dir := t.TempDir()
	src := filepath.Join(dir, "in.crate")
	dst := filepath.Join(dir, "out.crate")
	if err := os.WriteFile(src, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := OpenCrate(src)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.Save(dst); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, out) {
		t.Error("unmodified file changed across open+save")
	}
}
