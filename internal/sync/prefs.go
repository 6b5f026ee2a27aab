package sync

import (
	"os"
	"path/filepath"

	"github.com/berrio/seratosync/internal/fsutil"
	"github.com/berrio/seratosync/internal/library"
)

// copyPrefs copies the auxiliary preference files verbatim. Files absent at
// the source are simply skipped; a copy failure is recorded like any other
// per-artifact failure.
func (o *Orchestrator) copyPrefs(rep *Report) {
	o.logger.Printf("Copying preference files...")

	for _, name := range library.PrefFileNames {
		src := filepath.Join(o.roots.SourceSerato(), name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := os.MkdirAll(o.roots.TargetSerato(), 0o755); err != nil {
			rep.fail("pref", name, err)
			o.logger.Printf("  ✗ %s: %v", name, err)
			continue
		}
		if err := fsutil.CopyFile(src, filepath.Join(o.roots.TargetSerato(), name)); err != nil {
			rep.fail("pref", name, err)
			o.logger.Printf("  ✗ %s: %v", name, err)
			continue
		}
		rep.PrefsCopied++
		o.logger.Printf("  ✓ %s", name)
	}
}
