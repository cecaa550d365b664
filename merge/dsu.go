package merge

import (
	"sort"

	"github.com/katalvlaran/prrp/region"
)

// componentsByUnionFind groups vs into connected components with a
// path-compressed union-find restricted to adj edges whose both ends lie in
// vs: for each vertex, union it with every in-set neighbor. Components come
// back ordered by their smallest member id, so callers picking "the
// largest" get a tie-break independent of map iteration order.
func componentsByUnionFind(adj region.Adjacency, vs region.AreaSet) []region.AreaSet {
	dsu := region.NewDisjointSet(vs)
	for id := range vs {
		for nbr := range adj[id] {
			if vs.Has(nbr) {
				dsu.Union(id, nbr)
			}
		}
	}

	groups := dsu.Groups()
	byMin := make(map[region.AreaID]region.AreaSet, len(groups))
	mins := make([]region.AreaID, 0, len(groups))
	for _, g := range groups {
		m := g.Slice()[0]
		byMin[m] = g
		mins = append(mins, m)
	}
	sort.Slice(mins, func(i, j int) bool { return mins[i] < mins[j] })

	comps := make([]region.AreaSet, len(mins))
	for i, m := range mins {
		comps[i] = byMin[m]
	}
	return comps
}
