package sync

import "errors"

// Fatal validation errors. These abort a run before any filesystem
// mutation; check with errors.Is().
var (
	// ErrSourceMissing is returned when the source _Serato_ directory
	// does not exist.
	ErrSourceMissing = errors.New("source Serato directory does not exist")

	// ErrTargetMissing is returned when the destination Music directory
	// does not exist, meaning the bulk file copy has not been run yet.
	ErrTargetMissing = errors.New("target Music directory does not exist")
)
