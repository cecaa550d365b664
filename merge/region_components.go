package merge

import "github.com/katalvlaran/prrp/region"

// RegionComponents repairs a region whose own induced subgraph came out
// disconnected (the graph variant's dual case). It groups r with a
// union-find over its induced edges, finds the largest group, then links
// every other group into it by inserting one adjacency edge per stray
// vertex to an arbitrary representative of the largest group. adj is
// mutated directly — callers must pass a private, per-call copy, never a
// shared Adjacency.
//
// RegionComponents never removes vertices from r; it only adds edges, so r
// itself is unchanged and comes out connected.
func RegionComponents(adj region.Adjacency, r region.Region) {
	if len(r) == 0 {
		return
	}

	comps := componentsByUnionFind(adj, r)
	if len(comps) <= 1 {
		return
	}

	largestIdx := 0
	for i, c := range comps {
		if len(c) > len(comps[largestIdx]) {
			largestIdx = i
		}
	}
	rep := comps[largestIdx].Slice()[0]

	for i, c := range comps {
		if i == largestIdx {
			continue
		}
		for _, id := range c.Slice() {
			adj.AddEdge(id, rep)
		}
	}
}
