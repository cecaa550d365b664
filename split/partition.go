package split

import (
	"math/rand"

	"github.com/katalvlaran/prrp/region"
)

// Partition is the graph variant of the splitter: it shrinks r exactly as
// Region does, then decomposes whatever got dropped into its own connected
// components and hands each back as a fresh candidate region rather than
// returning the dropped vertices to a shared pool. The driver is
// responsible for assigning these new ids.
func Partition(adj region.Adjacency, r region.Region, target int, rng *rand.Rand) (region.Region, region.Partition, error) {
	shrunk, dropped, err := Region(adj, r, target, rng)
	if err != nil {
		return shrunk, nil, err
	}
	if len(dropped) == 0 {
		return shrunk, nil, nil
	}

	comps := region.ConnectedComponents(region.Induced(adj, dropped))
	extra := make(region.Partition, 0, len(comps))
	for _, c := range comps {
		extra = append(extra, c)
	}
	return shrunk, extra, nil
}
