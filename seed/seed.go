package seed

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prrp/region"
)

// GaplessSeed picks a seed area id from available, preferring a vertex
// adjacent to the already-assigned mass so the remaining unassigned pool
// stays contiguous. assigned may be empty (no preference; uniform pick).
// rng must be non-nil; callers own its lifecycle, one RNG per worker.
func GaplessSeed(adj region.Adjacency, available, assigned region.AreaSet, rng *rand.Rand) (region.AreaID, error) {
	if len(available) == 0 {
		return 0, fmt.Errorf("seed: gapless seed: %w", region.ErrNoCandidate)
	}
	if len(assigned) == 0 {
		return region.PickUniform(available, rng), nil
	}

	frontier := make(region.AreaSet)
	for a := range assigned {
		for nbr := range adj[a] {
			if available.Has(nbr) {
				frontier.Add(nbr)
			}
		}
	}
	if len(frontier) > 0 {
		return region.PickUniform(frontier, rng), nil
	}
	return region.PickUniform(available, rng), nil
}
