// Package parallel implements a worker pool that produces k independent
// solutions from a single-solution driver.
//
// Randomness: each worker is handed its own *rand.Rand derived from a root
// seed via a SplitMix64-style mix, so results are reproducible for a fixed
// root seed yet decorrelated across workers.
//
// Sharing: the input Adjacency is read-only across workers; a driver that
// needs to repair connectivity clones it internally (the root package's
// drivers already do this), so no explicit per-worker clone happens here.
//
// Failure policy: a solution that errors does not abort the others — its
// slot in the result carries the error instead, and every other worker's
// result is still returned. Results come back in completion order, each
// tagged with its solution index.
package parallel
