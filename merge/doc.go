// Package merge repairs the two connectivity invariants grow can break, both
// by grouping vertices with a path-compressed union-find (region.DisjointSet)
// over the relevant induced edges, then folding every minor group into the
// largest one:
//
// Pool absorbs stranded fragments of the unassigned pool into the region
// that just grew, restoring "available induces a connected subgraph".
//
// RegionComponents repairs the dual case — a region whose own induced
// subgraph came out disconnected — by inserting adjacency edges from every
// minor component into the largest one. It and PostFixup are the only
// places in the core that mutate the graph, and only ever on a private
// per-call copy.
//
// PostFixup runs last, after the finishing pass has folded leftover
// vertices into each region; it re-scans each region's induced subgraph
// with plain BFS (region.ConnectedComponents) rather than union-find,
// since by that point it also needs to distinguish an isolated component
// from a merely-disconnected one, which union-find's grouping alone
// doesn't tell you.
package merge
