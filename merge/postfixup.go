package merge

import "github.com/katalvlaran/prrp/region"

// PostFixup is the graph driver's final repair pass: for a region whose
// induced subgraph has fallen apart into multiple components (because
// later regions consumed the vertices that used to bridge them), it hubs
// every minor component onto a representative of the largest
// *non-isolated* component — one with at least one edge to another vertex
// of region, i.e. not a lone vertex — falling back to the first component
// found if every component turns out isolated. This is deliberately choosier
// than RegionComponents about which component becomes the hub.
func PostFixup(adj region.Adjacency, r region.Region) {
	if len(r) == 0 {
		return
	}

	comps := region.ConnectedComponents(region.Induced(adj, r))
	if len(comps) <= 1 {
		return
	}

	isolated := func(c region.AreaSet) bool {
		for id := range c {
			for nbr := range adj[id] {
				if r.Has(nbr) {
					return false
				}
			}
		}
		return true
	}

	mainIdx := 0
	found := false
	for i, c := range comps {
		if isolated(c) {
			continue
		}
		if !found || len(c) > len(comps[mainIdx]) {
			mainIdx = i
			found = true
		}
	}

	mainNode := comps[mainIdx].Slice()[0]

	for i, c := range comps {
		if i == mainIdx {
			continue
		}
		for _, id := range c.Slice() {
			adj.AddEdge(id, mainNode)
		}
	}
}
