// Package remap rewrites track paths stored in Serato metadata so they
// resolve against a destination drive's mount root instead of the source
// machine's filesystem.
package remap

import (
	"path/filepath"
	"strings"
)

// Path maps a source-rooted track path to a drive-relative one.
//
// The input is normalized (., .., separators resolved) first. If the
// normalized path falls under sourceRoot, that prefix is stripped and
// mountPrefix (e.g. "/Music") is prepended:
//
//	Path("/Users/berrio/Music/DJ Music/track.mp3", "/Users/berrio/Music", "/Music")
//	// => "/Music/DJ Music/track.mp3"
//
// Paths outside sourceRoot are returned unchanged apart from normalization;
// the metadata referenced a file outside the known library tree and there is
// nothing sensible to rewrite it to. Total function: no I/O, never fails.
func Path(path, sourceRoot, mountPrefix string) string {
	path = filepath.Clean(path)

	if rel, ok := under(path, filepath.Clean(sourceRoot)); ok {
		return mountPrefix + rel
	}
	return path
}

// under reports whether path falls under root, returning the remainder
// (leading separator included). A bare prefix match is not enough:
// /Users/berrio/Musical must not count as under /Users/berrio/Music.
func under(path, root string) (string, bool) {
	if path == root {
		return "", true
	}
	if strings.HasPrefix(path, root) && strings.HasPrefix(path[len(root):], string(filepath.Separator)) {
		return path[len(root):], true
	}
	return "", false
}
