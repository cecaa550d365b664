package region

import "sort"

// tarjanState carries the mutable bookkeeping for one connected component's
// low-link DFS: discovery/low time, visited marks, parent links, and the
// running articulation set. Bundled into a struct so the recursive walker
// below doesn't thread six separate maps through every call.
type tarjanState struct {
	n         InducedNeighbors
	discovery map[AreaID]int
	low       map[AreaID]int
	visited   map[AreaID]bool
	parent    map[AreaID]AreaID
	hasParent map[AreaID]bool
	timer     int
	cut       AreaSet
}

// ArticulationPoints computes the cut vertices of the (possibly
// disconnected) graph described by n, using Tarjan's low-link DFS run once
// per connected component. Complexity: O(n+m).
func ArticulationPoints(n InducedNeighbors) AreaSet {
	st := &tarjanState{
		n:         n,
		discovery: make(map[AreaID]int, len(n)),
		low:       make(map[AreaID]int, len(n)),
		visited:   make(map[AreaID]bool, len(n)),
		parent:    make(map[AreaID]AreaID, len(n)),
		hasParent: make(map[AreaID]bool, len(n)),
		cut:       make(AreaSet),
	}

	starts := make([]AreaID, 0, len(n))
	for id := range n {
		starts = append(starts, id)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	for _, root := range starts {
		if !st.visited[root] {
			st.dfs(root, true)
		}
	}
	return st.cut
}

// dfs performs the low-link traversal rooted at u. isRoot tells the caller
// whether u is the root of its DFS tree, which changes the articulation
// test: a root is a cut vertex iff it has more than one DFS child, while a
// non-root is a cut vertex iff some child's low-link cannot reach above u.
func (st *tarjanState) dfs(u AreaID, isRoot bool) {
	st.visited[u] = true
	st.discovery[u] = st.timer
	st.low[u] = st.timer
	st.timer++
	children := 0

	nbrs := make([]AreaID, 0, len(st.n[u]))
	for v := range st.n[u] {
		nbrs = append(nbrs, v)
	}
	sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })

	for _, v := range nbrs {
		if !st.visited[v] {
			children++
			st.parent[v] = u
			st.hasParent[v] = true
			st.dfs(v, false)

			if st.low[v] < st.low[u] {
				st.low[u] = st.low[v]
			}

			if isRoot && children > 1 {
				st.cut.Add(u)
			}
			if !isRoot && st.low[v] >= st.discovery[u] {
				st.cut.Add(u)
			}
		} else if !st.hasParent[u] || v != st.parent[u] {
			// back edge to an ancestor (not the tree edge to our own parent)
			if st.discovery[v] < st.low[u] {
				st.low[u] = st.discovery[v]
			}
		}
	}
}
