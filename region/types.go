package region

import (
	"errors"
	"sort"
)

// Sentinel errors for the PRRP core. Every package in this module wraps
// these with added context via fmt.Errorf("pkg: ...: %w", ...) rather than
// defining parallel error kinds — callers always branch with errors.Is
// against these five.
var (
	// ErrNoCandidate indicates a seed or pick was requested from an empty set.
	ErrNoCandidate = errors.New("region: no candidate available")

	// ErrInfeasible indicates region growth exhausted its retry budget.
	ErrInfeasible = errors.New("region: growth is infeasible")

	// ErrNoBoundary indicates the splitter found no removable boundary vertex.
	ErrNoBoundary = errors.New("region: no boundary vertex to remove")

	// ErrCorruptAdjacency indicates a symmetry or component invariant was violated.
	ErrCorruptAdjacency = errors.New("region: adjacency is corrupt")

	// ErrBadCardinality indicates a cardinality vector failed validation.
	ErrBadCardinality = errors.New("region: bad cardinality")
)

// AreaID is an opaque integer handle for an atomic area (a graph vertex).
// Uniqueness is scoped to a single run; the zero value is a valid ID.
type AreaID int64

// AreaSet is a set of AreaIDs. The zero value is not usable; construct with
// NewAreaSet or make(AreaSet).
type AreaSet map[AreaID]struct{}

// Region is a set of AreaIDs expected to induce a connected subgraph.
type Region = AreaSet

// Partition is an ordered collection of Regions.
type Partition []Region

// NewAreaSet builds an AreaSet from the given ids, deduplicating.
func NewAreaSet(ids ...AreaID) AreaSet {
	s := make(AreaSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member of s.
func (s AreaSet) Has(id AreaID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into s.
func (s AreaSet) Add(id AreaID) {
	s[id] = struct{}{}
}

// Remove deletes id from s. No-op if absent.
func (s AreaSet) Remove(id AreaID) {
	delete(s, id)
}

// Clone returns a shallow copy of s.
func (s AreaSet) Clone() AreaSet {
	out := make(AreaSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Slice returns the members of s as a slice sorted by AreaID.
//
// Sorting matters beyond cosmetics: Go's map iteration order is randomized
// per-process, so any "pick uniformly at random from this set" operation
// must first materialize a deterministic ordering before indexing with an
// rng — otherwise two runs with the same seed could diverge. Every
// random-pick call site in this module goes through Slice (or an equivalent
// sorted materialization) before calling rng.Intn.
func (s AreaSet) Slice() []AreaID {
	out := make([]AreaID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Union returns the members present in either s or other.
func (s AreaSet) Union(other AreaSet) AreaSet {
	out := make(AreaSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns the members present in both s and other.
func (s AreaSet) Intersect(other AreaSet) AreaSet {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(AreaSet, len(small))
	for id := range small {
		if big.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Difference returns the members of s not present in other.
func (s AreaSet) Difference(other AreaSet) AreaSet {
	out := make(AreaSet, len(s))
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Equal reports whether s and other contain exactly the same members.
func (s AreaSet) Equal(other AreaSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Adjacency maps an AreaID to the set of its neighboring AreaIDs. It must
// stay symmetric (u in adj[v] iff v in adj[u]) and irreflexive (v not in
// adj[v]), with no multi-edges. The set of keys is V.
type Adjacency map[AreaID]AreaSet

// Clone returns a deep copy of adj, safe to mutate independently — each
// parallel worker must operate on its own copy before any edge-inserting
// repair such as merge.RegionComponents runs.
func (adj Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(adj))
	for id, nbrs := range adj {
		out[id] = nbrs.Clone()
	}
	return out
}

// Vertices returns the key set of adj as a sorted slice.
func (adj Adjacency) Vertices() []AreaID {
	out := make([]AreaID, 0, len(adj))
	for id := range adj {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddEdge inserts the symmetric pair (u,v) into adj, creating neighbor sets
// as needed. Self-loops (u==v) are ignored.
func (adj Adjacency) AddEdge(u, v AreaID) {
	if u == v {
		return
	}
	if adj[u] == nil {
		adj[u] = make(AreaSet)
	}
	if adj[v] == nil {
		adj[v] = make(AreaSet)
	}
	adj[u].Add(v)
	adj[v].Add(u)
}

// Validate checks the symmetry and irreflexivity contract, returning
// ErrCorruptAdjacency (wrapped with the offending vertex pair) on the first
// violation found. Intended for driver entry points that accept a
// caller-built Adjacency directly rather than routing through BuildAdjacency.
func (adj Adjacency) Validate() error {
	for u, nbrs := range adj {
		for v := range nbrs {
			if u == v {
				return wrapCorrupt(u, v, "self-loop")
			}
			back, ok := adj[v]
			if !ok || !back.Has(u) {
				return wrapCorrupt(u, v, "asymmetric edge")
			}
		}
	}
	return nil
}
