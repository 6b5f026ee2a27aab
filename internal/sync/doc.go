// Package sync rewrites a Serato library's metadata so it works from a
// destination drive the music has already been copied to.
//
// The Orchestrator runs the whole flow: validate both roots, clear any
// stale destination metadata, then sync ordinary crates, smart crates,
// the master database, and the loose preference files, in that order.
// Track paths inside every artifact are rewritten to be relative to the
// destination drive, and the database's played flag is reset on every
// track.
//
// The flow is resilient: a failure while processing one artifact is
// recorded in the Report and the run continues with the next artifact.
// Only validation failures are fatal, and they occur before anything on
// the destination is touched.
package sync
