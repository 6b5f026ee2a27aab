// Package serato provides typed access to the record files a Serato DJ
// library is made of: crates (Subcrates/*.crate), smart crates
// (SmartCrates/*.scrate), and the master database ("database V2").
//
// All three share one encoding, a flat sequence of big-endian
// tag/length/value fields with one level of nesting for track entries.
// This package only models what the sync layer needs from them: open a
// file, walk its track entries, rewrite the stored path (and, for the
// database, per-track flags), and save the result. Fields it does not
// understand are carried through byte-for-byte.
package serato

import (
	"errors"
	"fmt"
	"os"
)

// ErrMalformed is returned (wrapped) when a file does not decode as a
// well-formed field sequence. Check with errors.Is.
var ErrMalformed = errors.New("malformed serato record")

// FieldPlayed is the database's per-track played flag.
const FieldPlayed = "bply"

// Kind selects the record layout details that differ between file types:
// the version stamp and the tag holding a track's path.
type Kind int

const (
	KindCrate Kind = iota
	KindSmartCrate
	KindDatabase
)

func (k Kind) version() string {
	switch k {
	case KindSmartCrate:
		return "1.0/Serato Smart Crate"
	case KindDatabase:
		return "2.0/Serato Scratch LIVE Database"
	default:
		return "1.0/Serato ScratchLive Crate"
	}
}

// pathTag is the child tag inside an otrk entry that holds the track path.
// Crates store it as ptrk, the database as pfil.
func (k Kind) pathTag() string {
	if k == KindDatabase {
		return "pfil"
	}
	return "ptrk"
}

// File is one parsed record file. It exclusively owns its track entries
// until Save; no Track reference should be retained afterwards.
type File struct {
	kind   Kind
	fields []*Field
}

// OpenCrate parses an ordinary crate file.
func OpenCrate(path string) (*File, error) { return open(path, KindCrate) }

// OpenSmartCrate parses a smart crate file.
func OpenSmartCrate(path string) (*File, error) { return open(path, KindSmartCrate) }

// OpenDatabase parses the master database file.
func OpenDatabase(path string) (*File, error) { return open(path, KindDatabase) }

func open(path string, kind Kind) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields, err := parseFields(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &File{kind: kind, fields: fields}, nil
}

// New returns an empty in-memory file of the given kind, stamped with the
// kind's version field.
func New(kind Kind) *File {
	return &File{
		kind: kind,
		fields: []*Field{
			{Tag: "vrsn", Data: encodeText(kind.version())},
		},
	}
}

// Save writes the file. Unrecognized fields round-trip unchanged.
func (f *File) Save(path string) error {
	if err := os.WriteFile(path, encodeFields(f.fields), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Track is a view over one otrk entry. Mutations write through to the
// owning File.
type Track struct {
	field   *Field
	pathTag string
}

// Relpath returns the stored track path.
func (t Track) Relpath() string {
	if c := t.field.Child(t.pathTag); c != nil {
		return decodeText(c.Data)
	}
	return ""
}

// SetPath replaces the stored track path.
func (t Track) SetPath(path string) {
	c := t.field.Child(t.pathTag)
	if c == nil {
		c = &Field{Tag: t.pathTag}
		t.field.Children = append(t.field.Children, c)
	}
	c.Data = encodeText(path)
}

// SetBool sets a one-byte flag field on the track, creating it if absent.
// Only meaningful for database tracks (e.g. FieldPlayed).
func (t Track) SetBool(tag string, v bool) {
	c := t.field.Child(tag)
	if c == nil {
		c = &Field{Tag: tag}
		t.field.Children = append(t.field.Children, c)
	}
	if v {
		c.Data = []byte{1}
	} else {
		c.Data = []byte{0}
	}
}

// Bool reads a one-byte flag field; absent counts as false.
func (t Track) Bool(tag string) bool {
	c := t.field.Child(tag)
	return c != nil && len(c.Data) == 1 && c.Data[0] != 0
}

// Tracks returns a view over every track entry, in file order.
func (f *File) Tracks() []Track {
	var tracks []Track
	for _, field := range f.fields {
		if field.Tag == "otrk" {
			tracks = append(tracks, Track{field: field, pathTag: f.kind.pathTag()})
		}
	}
	return tracks
}

// ModifyTracks applies fn to every track entry in file order, mutating
// in place.
func (f *File) ModifyTracks(fn func(Track)) {
	for _, t := range f.Tracks() {
		fn(t)
	}
}

// AddTrack appends a track entry referencing path.
func (f *File) AddTrack(path string) Track {
	field := &Field{Tag: "otrk"}
	f.fields = append(f.fields, field)
	t := Track{field: field, pathTag: f.kind.pathTag()}
	t.SetPath(path)
	return t
}
