// Package seed implements the gapless seed selector: picking a seed
// vertex that preserves contiguity with the already-assigned mass of a
// partition, a precondition for the next region-growth call to succeed.
//
// Contract:
//
//   - available empty            -> region.ErrNoCandidate.
//   - assigned empty              -> uniform random from available.
//   - N = (neighbors of assigned) ∩ available, N != empty -> uniform from N.
//   - N empty                     -> uniform random from available.
//
// Randomness is threaded explicitly via *rand.Rand; there is no hidden
// global RNG anywhere in this module.
package seed
