package sync

import (
	"fmt"
	"log"
	"os"

	"github.com/berrio/seratosync/internal/library"
)

// Options configures an Orchestrator.
type Options struct {
	// SourceMusic is the music root on the source machine; the _Serato_
	// metadata directory must live directly under it.
	SourceMusic string

	// TargetDrive is the destination drive's mount point. Its Music
	// directory must already exist (the bulk file copy runs first).
	TargetDrive string

	// CratePrefix, if non-empty, is prepended to every synced crate and
	// smart-crate file name on the destination.
	CratePrefix string

	// Logger for per-artifact progress. If nil, a default logger writing
	// to stderr is used.
	Logger *log.Logger
}

// Orchestrator runs one complete metadata sync.
type Orchestrator struct {
	roots  library.Roots
	prefix string
	logger *log.Logger
}

// New creates an Orchestrator.
//
// Example:
//
//	o := sync.New(&sync.Options{
//	    SourceMusic: "/Users/berrio/Music",
//	    TargetDrive: "/Volumes/sandisk",
//	})
//	report, err := o.Run()
func New(opts *Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[sync] ", log.LstdFlags)
	}
	return &Orchestrator{
		roots: library.Roots{
			SourceMusic: opts.SourceMusic,
			TargetDrive: opts.TargetDrive,
		},
		prefix: opts.CratePrefix,
		logger: logger,
	}
}

// Run performs the full sync: validate, clear stale destination metadata,
// then crates, smart crates, database, and preference files, in that fixed
// order. Per-artifact failures are collected in the returned Report; Run
// itself only fails on validation or when the stale metadata tree cannot
// be removed, and nothing is mutated when validation fails.
func (o *Orchestrator) Run() (*Report, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	// Replace, never merge: stale artifacts from a previous sync must not
	// survive a rerun.
	if _, err := os.Stat(o.roots.TargetSerato()); err == nil {
		o.logger.Printf("Removing existing Serato metadata at %s", o.roots.TargetSerato())
		if err := os.RemoveAll(o.roots.TargetSerato()); err != nil {
			return nil, fmt.Errorf("clear target metadata: %w", err)
		}
	}

	rep := &Report{}
	o.syncKind(crateKind, &rep.Crates, rep)
	o.syncKind(smartCrateKind, &rep.SmartCrates, rep)
	o.syncDatabase(rep)
	o.copyPrefs(rep)
	return rep, nil
}

func (o *Orchestrator) validate() error {
	if _, err := os.Stat(o.roots.SourceSerato()); err != nil {
		return fmt.Errorf("%w: %s", ErrSourceMissing, o.roots.SourceSerato())
	}
	if _, err := os.Stat(o.roots.TargetMusic()); err != nil {
		return fmt.Errorf("%w: %s (copy the music files first)", ErrTargetMissing, o.roots.TargetMusic())
	}
	return nil
}
