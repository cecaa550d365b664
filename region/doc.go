// Package region defines the core data model of the PRRP engine — areas,
// adjacency, regions, and partitions — and the graph primitives the
// region-growth correctness argument depends on: adjacency construction
// (from a raw mapping or from in-memory polygon/grid geometry), connected
// components, boundary detection, Tarjan articulation points, and a
// path-compressed union-find.
//
// What:
//
//   - AreaID is an opaque integer vertex handle.
//   - Adjacency is a symmetric, irreflexive map from AreaID to its neighbor set.
//   - Region is a set of AreaIDs expected to induce a connected subgraph.
//   - Partition is an ordered collection of Regions.
//
// Why:
//
//   - Every higher-level package (seed, grow, merge, split, the drivers)
//     operates purely in terms of these types; none of them touch a
//     string-keyed graph representation, so AreaIDs never need stringifying
//     on the hot path.
//
// Complexity:
//
//   - ConnectedComponents, ArticulationPoints: O(n+m).
//   - BoundaryOf: O(|region| * avg-degree).
//   - DisjointSet: amortized O(α(n)) per Find/Union.
//
// Errors:
//
//	ErrNoCandidate      - a seed/pick was requested from an empty set.
//	ErrInfeasible       - region growth exhausted its retry budget.
//	ErrNoBoundary       - the splitter found no removable boundary vertex.
//	ErrCorruptAdjacency - a symmetry or component invariant was violated.
//	ErrBadCardinality   - a cardinality vector failed validation.
package region
