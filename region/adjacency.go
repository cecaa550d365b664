package region

import "fmt"

// wrapCorrupt wraps ErrCorruptAdjacency with the offending vertex pair and a
// short reason, using the fmt.Errorf("pkg: context: %w", ...) wrapping
// convention used throughout this module.
func wrapCorrupt(u, v AreaID, reason string) error {
	return fmt.Errorf("region: %s between %d and %d: %w", reason, u, v, ErrCorruptAdjacency)
}

// BuildAdjacency sanitizes a raw neighbor mapping into a symmetric,
// irreflexive Adjacency. Self-loops are dropped. Edges are auto-symmetrized:
// if raw lists u->v but not v->u, the reverse is added rather than
// rejected, since many real inputs only record each boundary-sharing pair
// once. Duplicate edges collapse naturally (Adjacency is set-valued).
//
// Idempotent: calling BuildAdjacency twice on the same raw input yields
// equal Adjacency, since sanitation is a pure function of raw.
func BuildAdjacency(raw map[AreaID][]AreaID) Adjacency {
	adj := make(Adjacency, len(raw))
	for id := range raw {
		if adj[id] == nil {
			adj[id] = make(AreaSet)
		}
	}
	for id, nbrs := range raw {
		for _, nbr := range nbrs {
			if nbr == id {
				continue // drop self-loop
			}
			adj.AddEdge(id, nbr)
		}
	}
	return adj
}

// Point is a 2D coordinate used by FromPolygons.
type Point struct {
	X, Y float64
}

// Polygon is an in-memory simple polygon: a closed ring of boundary
// vertices associated with one AreaID. Reading shapefiles or any other
// on-disk geometric format is out of scope here — Polygon is the
// already-parsed handoff point from that external ingester.
type Polygon struct {
	ID       AreaID
	Vertices []Point
}

// segmentPrecision rounds coordinates before keying a boundary segment, so
// that two polygons sharing an exact boundary edge (the normal case for a
// conforming shapefile mesh, e.g. adjacent census tracts) produce identical
// keys despite independent floating-point construction.
const segmentPrecision = 1e6

type segmentKey struct {
	ax, ay, bx, by int64
}

func snap(p Point) (int64, int64) {
	return int64(p.X * segmentPrecision), int64(p.Y * segmentPrecision)
}

// canonicalSegment builds an orientation-independent key for the edge a-b,
// so that polygon A's edge (p,q) matches polygon B's edge (q,p).
func canonicalSegment(a, b Point) segmentKey {
	ax, ay := snap(a)
	bx, by := snap(b)
	if ax > bx || (ax == bx && ay > by) {
		ax, ay, bx, by = bx, by, ax, ay
	}
	return segmentKey{ax, ay, bx, by}
}

// FromPolygons builds an Adjacency from in-memory polygons using rook
// contiguity: two areas are adjacent iff their boundaries share more than a
// point, i.e. a full edge segment. This implementation detects
// shared edges by exact (rounded) segment matching, which holds for any
// conforming polygon mesh where adjacent areas share boundary vertices —
// the standard case for shapefile-derived regionalization input. It does
// not attempt general partial-overlap segment intersection.
func FromPolygons(polys []Polygon) Adjacency {
	adj := make(Adjacency, len(polys))
	owners := make(map[segmentKey][]AreaID)
	for _, poly := range polys {
		if adj[poly.ID] == nil {
			adj[poly.ID] = make(AreaSet)
		}
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			a := poly.Vertices[i]
			b := poly.Vertices[(i+1)%n]
			key := canonicalSegment(a, b)
			owners[key] = append(owners[key], poly.ID)
		}
	}
	for _, ids := range owners {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				adj.AddEdge(ids[i], ids[j])
			}
		}
	}
	return adj
}

// FromGrid builds a rows×cols rook-contiguity Adjacency directly from unit
// grid dimensions (the degenerate, most common polygon mesh: a raster of
// unit-square cells). AreaID for cell (r,c) is r*cols+c, row-major.
// Neighbors are (r±1,c) and (r,c±1).
func FromGrid(rows, cols int) (Adjacency, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("region: FromGrid: rows=%d cols=%d must each be >= 1: %w", rows, cols, ErrBadCardinality)
	}
	adj := make(Adjacency, rows*cols)
	id := func(r, c int) AreaID { return AreaID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if adj[u] == nil {
				adj[u] = make(AreaSet)
			}
			if c+1 < cols {
				adj.AddEdge(u, id(r, c+1))
			}
			if r+1 < rows {
				adj.AddEdge(u, id(r+1, c))
			}
		}
	}
	return adj, nil
}
