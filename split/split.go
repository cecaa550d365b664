package split

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prrp/region"
)

// Region shrinks r down to target cardinality, returning the shrunk region
// and the set of vertices dropped along the way (for the caller to return
// to its unassigned pool). If target >= len(r) it returns r unchanged.
//
// Each removal prefers a non-articulation boundary vertex of the current
// induced subgraph so the region stays connected by construction; when
// every boundary vertex is a cut vertex, it falls back to picking among all
// of them, and a resulting disconnection is resolved by keeping only the
// largest component and dropping the rest. Removal is capped at 10*excess
// attempts; on cap hit, whatever remains is returned as-is — undershoot
// past target from a dropped minor component is accepted, the caller
// (driver) decides what to do with it.
func Region(adj region.Adjacency, r region.Region, target int, rng *rand.Rand) (region.Region, region.AreaSet, error) {
	if target <= 0 {
		return nil, nil, fmt.Errorf("split: region: %w", region.ErrBadCardinality)
	}

	shrunk := r.Clone()
	dropped := region.NewAreaSet()

	excess := len(shrunk) - target
	if excess <= 0 {
		return shrunk, dropped, nil
	}

	maxAttempts := 10 * excess
	for attempts := 0; len(shrunk) > target && attempts < maxAttempts; attempts++ {
		boundary := region.BoundaryOf(adj, shrunk)
		ap := region.ArticulationPoints(region.Induced(adj, shrunk))
		candidates := boundary.Difference(ap)
		if len(candidates) == 0 {
			candidates = boundary
		}
		if len(candidates) == 0 {
			return shrunk, dropped, fmt.Errorf("split: region: %w", region.ErrNoBoundary)
		}

		pick := region.PickUniform(candidates, rng)
		shrunk.Remove(pick)
		dropped.Add(pick)

		comps := region.ConnectedComponents(region.Induced(adj, shrunk))
		if len(comps) > 1 {
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
					shrunk.Remove(id)
					dropped.Add(id)
				}
			}
		}
	}

	return shrunk, dropped, nil
}
