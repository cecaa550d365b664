package merge

import (
	"fmt"

	"github.com/katalvlaran/prrp/region"
)

// Pool restores the "available induces a connected subgraph" invariant
// after a grow call has fragmented the pool. available is mutated to
// become its own largest component; every smaller component is absorbed
// into r — by construction each severed fragment still borders r, since
// growth is what cut it off from the rest of available.
func Pool(adj region.Adjacency, available region.AreaSet, r region.Region) error {
	if len(available) == 0 {
		return nil
	}

	comps := componentsByUnionFind(adj, available)
	if len(comps) == 0 {
		return fmt.Errorf("merge: pool: %w", region.ErrCorruptAdjacency)
	}
	if len(comps) == 1 {
		return nil
	}

	largestIdx := 0
	for i, c := range comps {
		if len(c) > len(comps[largestIdx]) {
			largestIdx = i
		}
	}

	for i, c := range comps {
		if i == largestIdx {
			continue
		}
		for id := range c {
			available.Remove(id)
			r.Add(id)
		}
	}

	return nil
}
