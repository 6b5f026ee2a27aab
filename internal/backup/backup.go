// Package backup exports a Serato library to a USB drive directly: it
// copies the audio files every crate references onto the drive and writes
// crates whose paths point at the copied files. Unlike the sync flow it
// does not assume a bulk file copy has already happened.
package backup

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/berrio/seratosync/internal/fsutil"
	"github.com/berrio/seratosync/internal/library"
	"github.com/berrio/seratosync/internal/serato"
)

// DefaultTracksSubfolder is where exported audio lands on the drive.
const DefaultTracksSubfolder = "Serato Music"

// Fatal validation errors; check with errors.Is().
var (
	ErrSourceMissing     = errors.New("source directory does not exist")
	ErrTargetMissing     = errors.New("target directory does not exist")
	ErrTargetNotWritable = errors.New("target directory is not writable")
)

// Options configures a backup run.
type Options struct {
	// Source is the library's _Serato_ metadata directory; crates are
	// expected in its Subcrates subdirectory.
	Source string

	// Target is the destination drive's mount point.
	Target string

	// TracksSubfolder is the directory on the drive that receives the
	// audio files. Empty means DefaultTracksSubfolder.
	TracksSubfolder string

	// Logger for progress. If nil, a default logger writing to stderr
	// is used.
	Logger *log.Logger
}

// Failure records one crate or track that could not be exported.
type Failure struct {
	Name string
	Err  error
}

// Report is the outcome of one backup run.
type Report struct {
	CratesFound    int
	CratesExported int
	TracksCopied   int
	TotalBytes     int64 // size of everything on the target after the run
	Failures       []Failure
}

// Backup runs the export.
type Backup struct {
	source    string
	target    string
	tracksDir string // name of the subfolder, not a full path
	logger    *log.Logger
}

// New creates a Backup.
func New(opts *Options) *Backup {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[backup] ", log.LstdFlags)
	}
	sub := opts.TracksSubfolder
	if sub == "" {
		sub = DefaultTracksSubfolder
	}
	return &Backup{
		source:    opts.Source,
		target:    opts.Target,
		tracksDir: sub,
		logger:    logger,
	}
}

// Run validates both roots and exports every crate. Per-crate and per-track
// failures are collected in the Report; only validation errors are fatal.
func (b *Backup) Run() (*Report, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	rep := &Report{}
	names, err := b.crateNames()
	if err != nil {
		return nil, err
	}
	rep.CratesFound = len(names)
	if len(names) == 0 {
		b.logger.Printf("No crate files found in %s", filepath.Join(b.source, library.SubcratesDirName))
		return rep, nil
	}

	b.logger.Printf("Exporting %d crate(s) to %s...", len(names), b.target)
	if err := os.MkdirAll(filepath.Join(b.target, b.tracksDir), 0o755); err != nil {
		return nil, fmt.Errorf("create tracks directory: %w", err)
	}

	for _, name := range names {
		if err := b.exportCrate(name, rep); err != nil {
			rep.Failures = append(rep.Failures, Failure{Name: name, Err: err})
			b.logger.Printf("  ✗ %s: %v", name, err)
			continue
		}
		rep.CratesExported++
		b.logger.Printf("  ✓ %s", name)
	}

	if size, err := fsutil.DirSize(b.target); err == nil {
		rep.TotalBytes = size
	}
	return rep, nil
}

func (b *Backup) validate() error {
	if _, err := os.Stat(b.source); err != nil {
		return fmt.Errorf("%w: %s", ErrSourceMissing, b.source)
	}
	if _, err := os.Stat(b.target); err != nil {
		return fmt.Errorf("%w: %s", ErrTargetMissing, b.target)
	}
	if !fsutil.Writable(b.target) {
		return fmt.Errorf("%w: %s", ErrTargetNotWritable, b.target)
	}
	return nil
}

// crateNames lists the crate files to export, in directory order.
func (b *Backup) crateNames() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(b.source, library.SubcratesDirName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".crate") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// exportCrate copies every track a crate references into the tracks
// subfolder and writes the crate to the drive with paths pointing at the
// copies. A track that cannot be copied is recorded but does not fail the
// crate; its entry keeps pointing at the copy location regardless, so the
// crate stays consistent once the file is supplied.
func (b *Backup) exportCrate(name string, rep *Report) error {
	crate, err := serato.OpenCrate(filepath.Join(b.source, library.SubcratesDirName, name))
	if err != nil {
		return err
	}

	crate.ModifyTracks(func(t serato.Track) {
		src := t.Relpath()
		base := filepath.Base(src)
		dst := filepath.Join(b.target, b.tracksDir, base)
		if err := fsutil.CopyFile(src, dst); err != nil {
			rep.Failures = append(rep.Failures, Failure{Name: name + ": " + base, Err: err})
		} else {
			rep.TracksCopied++
		}
		t.SetPath("/" + b.tracksDir + "/" + base)
	})

	dstDir := filepath.Join(b.target, library.SeratoDirName, library.SubcratesDirName)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return err
	}
	return crate.Save(filepath.Join(dstDir, name))
}
