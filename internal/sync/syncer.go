package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/berrio/seratosync/internal/library"
	"github.com/berrio/seratosync/internal/remap"
	"github.com/berrio/seratosync/internal/serato"
)

// kind describes one category of crate artifact. Ordinary crates and smart
// crates follow the same sync flow and differ only in these details.
type kind struct {
	name string // report label
	dir  string // subdirectory under _Serato_
	ext  string // file extension, including the dot
	open func(path string) (*serato.File, error)
}

var (
	crateKind = kind{
		name: "crate",
		dir:  library.SubcratesDirName,
		ext:  ".crate",
		open: serato.OpenCrate,
	}
	smartCrateKind = kind{
		name: "smart crate",
		dir:  library.SmartCratesDirName,
		ext:  ".scrate",
		open: serato.OpenSmartCrate,
	}
)

// syncKind syncs every artifact of one kind from the source metadata tree
// to the destination. A missing source subdirectory is not an error; the
// category may legitimately not exist. Individual artifact failures are
// folded into the report and do not stop the loop.
func (o *Orchestrator) syncKind(k kind, cat *Category, rep *Report) {
	srcDir := filepath.Join(o.roots.SourceSerato(), k.dir)
	dstDir := filepath.Join(o.roots.TargetSerato(), k.dir)

	entries, err := os.ReadDir(srcDir)
	if os.IsNotExist(err) {
		o.logger.Printf("No %s directory found", k.dir)
		return
	}
	if err != nil {
		rep.fail(k.name, k.dir, err)
		cat.Failed++
		return
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		rep.fail(k.name, k.dir, err)
		cat.Failed++
		return
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), k.ext) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return
	}

	o.logger.Printf("Processing %d %s(s)...", len(names), k.name)
	for _, name := range names {
		cat.Attempted++
		dstName := o.prefix + name
		if err := o.syncOne(k, filepath.Join(srcDir, name), filepath.Join(dstDir, dstName)); err != nil {
			cat.Failed++
			rep.fail(k.name, name, err)
			o.logger.Printf("  ✗ %s: %v", name, err)
			continue
		}
		cat.Synced++
		if o.prefix != "" {
			o.logger.Printf("  ✓ %s -> %s", name, dstName)
		} else {
			o.logger.Printf("  ✓ %s", name)
		}
	}
}

// syncOne opens a single artifact, rewrites every track path it contains to
// be relative to the destination drive, and persists it under dst.
func (o *Orchestrator) syncOne(k kind, src, dst string) error {
	f, err := k.open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", k.name, err)
	}
	f.ModifyTracks(func(t serato.Track) {
		t.SetPath(remap.Path(t.Relpath(), o.roots.SourceMusic, library.MountPrefix))
	})
	return f.Save(dst)
}
