// Package metis parses the METIS graph text format into a region.Adjacency.
// The format's first line is "n m [fmt]"; each of the next n lines
// holds that vertex's space-separated, 1-based neighbor ids. Vertex ids are
// converted to 0-based AreaIDs on the way in — everything downstream of
// Parse is id-agnostic.
//
// This ingester is optional: the core never inspects where an Adjacency
// came from, so callers with their own loader can skip this package
// entirely.
package metis
