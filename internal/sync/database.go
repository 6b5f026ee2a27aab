package sync

import (
	"os"
	"path/filepath"

	"github.com/berrio/seratosync/internal/library"
	"github.com/berrio/seratosync/internal/remap"
	"github.com/berrio/seratosync/internal/serato"
)

// syncDatabase syncs the singleton master database. Beyond the path rewrite
// every track also gets its played flag cleared, so the library starts
// fresh on the destination drive. The database keeps its fixed file name;
// the crate prefix does not apply to it.
func (o *Orchestrator) syncDatabase(rep *Report) {
	src := filepath.Join(o.roots.SourceSerato(), library.DatabaseFileName)

	if _, err := os.Stat(src); os.IsNotExist(err) {
		o.logger.Printf("No %s file found", library.DatabaseFileName)
		return
	}

	rep.Database.Attempted = 1
	o.logger.Printf("Processing database...")

	if err := o.syncDatabaseFile(src); err != nil {
		rep.Database.Failed = 1
		rep.fail("database", library.DatabaseFileName, err)
		o.logger.Printf("  ✗ %s: %v", library.DatabaseFileName, err)
		return
	}
	rep.Database.Synced = 1
	o.logger.Printf("  ✓ %s", library.DatabaseFileName)
}

func (o *Orchestrator) syncDatabaseFile(src string) error {
	db, err := serato.OpenDatabase(src)
	if err != nil {
		return err
	}
	db.ModifyTracks(func(t serato.Track) {
		t.SetPath(remap.Path(t.Relpath(), o.roots.SourceMusic, library.MountPrefix))
		t.SetBool(serato.FieldPlayed, false)
	})
	if err := os.MkdirAll(o.roots.TargetSerato(), 0o755); err != nil {
		return err
	}
	return db.Save(filepath.Join(o.roots.TargetSerato(), library.DatabaseFileName))
}
