package sync

// Failure records one artifact that could not be synced.
type Failure struct {
	Category string // "crate", "smart crate", "database", "pref"
	Name     string // source file name
	Err      error
}

// Category accumulates per-kind counts for one run.
type Category struct {
	Attempted int
	Synced    int
	Failed    int
}

// Report is the aggregated outcome of one Orchestrator run. It is not
// modified after Run returns.
type Report struct {
	Crates      Category
	SmartCrates Category
	Database    Category // Attempted is 0 (no database) or 1
	PrefsCopied int
	Failures    []Failure
}

// Clean reports whether every attempted artifact synced.
func (r *Report) Clean() bool {
	return len(r.Failures) == 0
}

func (r *Report) fail(category, name string, err error) {
	r.Failures = append(r.Failures, Failure{Category: category, Name: name, Err: err})
}
