package backup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/berrio/seratosync/internal/library"
)

// musicFolders are the known track locations on a drive, in the order they
// are probed. The sync flow writes under Music, the backup flow under
// Serato Music.
var musicFolders = []string{DefaultTracksSubfolder, "Music", "DJ Music"}

var audioExts = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".wav":  true,
}

// Info describes what a drive currently holds.
type Info struct {
	HasSerato   bool
	CrateNames  []string
	MusicFolder string // first known folder holding audio files, "" if none
	TrackCount  int    // audio files in MusicFolder
}

// Inspect reports on an existing backup or sync at target. It mutates
// nothing.
func Inspect(target string) (*Info, error) {
	if _, err := os.Stat(target); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetMissing, target)
	}

	info := &Info{}

	// Metadata can sit at the drive root (backup flow) or under Music
	// (sync flow).
	for _, seratoDir := range []string{
		filepath.Join(target, library.SeratoDirName),
		filepath.Join(target, library.MusicDirName, library.SeratoDirName),
	} {
		entries, err := os.ReadDir(filepath.Join(seratoDir, library.SubcratesDirName))
		if err != nil {
			continue
		}
		info.HasSerato = true
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".crate") {
				info.CrateNames = append(info.CrateNames, e.Name())
			}
		}
		break
	}

	for _, folder := range musicFolders {
		n := countAudioFiles(filepath.Join(target, folder))
		if n > 0 {
			info.MusicFolder = folder
			info.TrackCount = n
			break
		}
	}
	return info, nil
}

func countAudioFiles(root string) int {
	var n int
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtrees just don't count
		}
		if d.Type().IsRegular() && audioExts[strings.ToLower(filepath.Ext(path))] {
			n++
		}
		return nil
	})
	return n
}
