package region

import "sort"

// InducedNeighbors is a view of neighbor lists restricted to some vertex
// set — the shape ConnectedComponents and ArticulationPoints both consume,
// so callers needing a component scan over a subgraph (e.g. a region, or
// the unassigned pool) don't need to materialize a full Adjacency copy.
type InducedNeighbors map[AreaID]AreaSet

// Induced restricts adj to the vertices in vs, keeping only edges whose
// both ends lie in vs — the "induced subgraph" of the GLOSSARY.
func Induced(adj Adjacency, vs AreaSet) InducedNeighbors {
	out := make(InducedNeighbors, len(vs))
	for id := range vs {
		nbrs := make(AreaSet)
		for nbr := range adj[id] {
			if vs.Has(nbr) {
				nbrs.Add(nbr)
			}
		}
		out[id] = nbrs
	}
	return out
}

// ConnectedComponents runs BFS over the induced subgraph described by n,
// returning non-empty, pairwise-disjoint vertex sets whose union equals the
// key set of n. Complexity: O(n+m).
func ConnectedComponents(n InducedNeighbors) []AreaSet {
	visited := make(map[AreaID]bool, len(n))
	var comps []AreaSet

	// Deterministic start order so the component slice order (not just its
	// contents) is stable for a fixed input, independent of map iteration.
	starts := make([]AreaID, 0, len(n))
	for id := range n {
		starts = append(starts, id)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	for _, start := range starts {
		if visited[start] {
			continue
		}
		comp := make(AreaSet)
		queue := []AreaID{start}
		visited[start] = true
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			comp.Add(cur)
			for nbr := range n[cur] {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
