// Package split implements the splitter: shrinking an oversize region
// down to a target cardinality while preserving connectivity, by repeatedly
// removing non-articulation boundary vertices (falling back to any boundary
// vertex when every one of them is a cut vertex) and dropping minor
// components whenever a removal happens to disconnect the region.
//
// Region implements the spatial variant, returning the shrunk region plus
// whatever got dropped along the way for the caller to return to its pool.
// Partition implements the graph variant, which additionally regroups the
// dropped vertices into their own connected components and hands them back
// as brand-new candidate regions.
package split
