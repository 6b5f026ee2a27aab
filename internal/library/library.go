// Package library describes the on-disk layout of a Serato DJ library:
// the _Serato_ metadata directory, its crate subdirectories, the master
// database file, and the destination layout mirrored under <drive>/Music.
package library

import "path/filepath"

const (
	// SeratoDirName is the metadata directory Serato keeps next to the music.
	SeratoDirName = "_Serato_"

	// SubcratesDirName holds ordinary crate files (*.crate).
	SubcratesDirName = "Subcrates"

	// SmartCratesDirName holds rule-based crate files (*.scrate).
	SmartCratesDirName = "SmartCrates"

	// DatabaseFileName is the singleton master database. The space is part
	// of the name Serato uses.
	DatabaseFileName = "database V2"

	// MusicDirName is the directory on the destination drive that mirrors
	// the source music tree. Track paths inside synced metadata are
	// rewritten to be relative to the drive root, rooted at this directory.
	MusicDirName = "Music"

	// MountPrefix is prepended to remapped track paths so they resolve
	// against the destination drive's mount root.
	MountPrefix = "/" + MusicDirName
)

// PrefFileNames are the auxiliary preference files copied verbatim from the
// source metadata directory to the destination.
var PrefFileNames = []string{
	"neworder.pref",
	"window.pref",
	"collapsed.pref",
}

// Roots holds the two filesystem roots a sync run operates between.
// Immutable for the duration of a run.
type Roots struct {
	// SourceMusic is the music root on the source machine,
	// e.g. /Users/berrio/Music. The _Serato_ directory lives directly
	// under it.
	SourceMusic string

	// TargetDrive is the mount point of the destination drive,
	// e.g. /Volumes/sandisk.
	TargetDrive string
}

// SourceSerato returns the source metadata directory.
func (r Roots) SourceSerato() string {
	return filepath.Join(r.SourceMusic, SeratoDirName)
}

// TargetMusic returns the music directory on the destination drive. The
// external file-copy step must have created it before a sync run.
func (r Roots) TargetMusic() string {
	return filepath.Join(r.TargetDrive, MusicDirName)
}

// TargetSerato returns the destination metadata directory.
func (r Roots) TargetSerato() string {
	return filepath.Join(r.TargetDrive, MusicDirName, SeratoDirName)
}
