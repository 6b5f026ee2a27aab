package serato

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// Field is one tag/length/value record. Serato files are a flat sequence of
// fields; tags whose first byte is 'o' (otrk, osrt, ovct, ...) carry a nested
// field sequence as their payload, everything else is an opaque leaf.
type Field struct {
	Tag      string // 4 ASCII bytes
	Data     []byte // leaf payload
	Children []*Field
}

func (f *Field) composite() bool {
	return len(f.Tag) == 4 && f.Tag[0] == 'o'
}

// Child returns the first direct child with the given tag, or nil.
func (f *Field) Child(tag string) *Field {
	for _, c := range f.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// parseFields decodes a field sequence. Every field must fit inside data:
// a declared length running past the end marks the file malformed.
func parseFields(data []byte) ([]*Field, error) {
	var fields []*Field
	for len(data) > 0 {
		if len(data) < 8 {
			return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(data))
		}
		tag := string(data[:4])
		if !validTag(tag) {
			return nil, fmt.Errorf("%w: bad tag %q", ErrMalformed, tag)
		}
		size := binary.BigEndian.Uint32(data[4:8])
		if uint64(size) > uint64(len(data)-8) {
			return nil, fmt.Errorf("%w: field %s declares %d bytes, %d remain", ErrMalformed, tag, size, len(data)-8)
		}
		payload := data[8 : 8+size]
		data = data[8+size:]

		f := &Field{Tag: tag}
		if f.composite() {
			children, err := parseFields(payload)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", tag, err)
			}
			f.Children = children
		} else {
			f.Data = append([]byte(nil), payload...)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func validTag(tag string) bool {
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func encodeFields(fields []*Field) []byte {
	var buf bytes.Buffer
	for _, f := range fields {
		payload := f.Data
		if f.composite() {
			payload = encodeFields(f.Children)
		}
		buf.WriteString(f.Tag)
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(payload)))
		buf.Write(size[:])
		buf.Write(payload)
	}
	return buf.Bytes()
}

// Text fields (version strings, paths, t*-tagged columns) are UTF-16BE.

func decodeText(data []byte) string {
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	return string(utf16.Decode(units))
}

func encodeText(s string) []byte {
	units := utf16.Encode([]rune(s))
	data := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(data[2*i:], u)
	}
	return data
}
