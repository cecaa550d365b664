// Package prrp implements P-Regionalization through Recursive Partitioning:
// splitting a graph's vertices into p connected regions of prescribed
// cardinality.
//
//	🚀 What is prrp?
//
//	A sequential, seed-reproducible regionalization engine built from five
//	small components:
//
//	  • region  — adjacency, connected components, articulation points, union-find
//	  • seed    — gapless seed selection
//	  • grow    — region growth (spatial frontier walk / graph heap walk)
//	  • merge   — pool and region connectivity repair
//	  • split   — oversize region shrinking
//
// Two drivers sit on top: RunSpatial for the fixed-cardinality-vector case
// and RunGraph for the target-cardinality-with-overflow-split case.
// RunParallel and RunParallelGraph fan RunSpatial and RunGraph respectively
// out across a worker pool for k independent solutions.
//
// ✨ Design points:
//
//   - Every random choice threads an explicit *rand.Rand — no package-level
//     RNG, so a run is exactly reproducible given the same seed.
//   - The input Adjacency is never mutated in place; any graph repair
//     (region-internal edge insertion) happens on a private copy that is
//     returned alongside the partition, never silently applied to the
//     caller's graph.
//   - Go map iteration order is randomized per process, so every uniform
//     pick from a set goes through region.PickUniform, which sorts before
//     indexing.
//
// Subpackages:
//
//	region/   — shared vertex-set and adjacency primitives
//	seed/     — seed selection
//	grow/     — region growth
//	merge/    — connectivity repair
//	split/    — region shrinking
//	metis/    — optional METIS text-format adjacency ingester
//	parallel/ — multi-solution worker pool
package prrp
