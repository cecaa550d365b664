package grow

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prrp/region"
	"github.com/katalvlaran/prrp/seed"
)

// Spatial grows one region of exactly target cardinality out of available,
// mutating available in place to remove whatever it consumes. It retries
// with a fresh seed, up to maxRetries times, whenever a grow attempt gets
// stuck before reaching target. adj is read-only; callers hand in a private
// available set, copy-on-write at the caller's boundary.
func Spatial(adj region.Adjacency, available region.AreaSet, target int, maxRetries int, rng *rand.Rand) (region.Region, error) {
	if target <= 0 {
		return nil, fmt.Errorf("grow: spatial: %w", region.ErrBadCardinality)
	}
	if len(available) < target {
		return nil, fmt.Errorf("grow: spatial: %w", region.ErrInfeasible)
	}

	vertices := adj.Vertices()
	all := region.NewAreaSet(vertices...)

	for attempt := 0; attempt <= maxRetries; attempt++ {
		assigned := all.Difference(available)
		seedID, err := seed.GaplessSeed(adj, available, assigned, rng)
		if err != nil {
			return nil, fmt.Errorf("grow: spatial: %w", err)
		}

		r := region.NewAreaSet(seedID)
		pool := available.Clone()
		pool.Remove(seedID)

		for len(r) < target {
			frontier := make(region.AreaSet)
			for m := range r {
				for nbr := range adj[m] {
					if pool.Has(nbr) {
						frontier.Add(nbr)
					}
				}
			}
			if len(frontier) == 0 {
				break
			}
			pick := region.PickUniform(frontier, rng)
			r.Add(pick)
			pool.Remove(pick)
		}

		if len(r) == target {
			for id := range r {
				available.Remove(id)
			}
			return r, nil
		}
	}

	return nil, fmt.Errorf("grow: spatial: exhausted retries: %w", region.ErrInfeasible)
}
