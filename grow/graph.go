package grow

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prrp/region"
	"github.com/katalvlaran/prrp/seed"
)

// Graph grows one region of target cardinality out of available (U),
// mutating available in place as vertices are consumed. articulation
// filters cut vertices out of heap expansion candidates to lower the
// chance of growth severing the remainder of U; it is a precomputed set,
// not recomputed as U shrinks, and the fallback picks below do not consult
// it, so U can still fragment. If U is no larger than target the whole of
// U is returned as the region.
//
// Expansion is heap-guided: the frontier candidate with the most
// unassigned neighbors pops first. When the heap empties before target is
// reached, a fresh candidate is drawn — first from the neighbors of the
// region already grown, falling back to a uniform pick over all of U —
// and retried up to maxRetries times before giving up.
func Graph(adj region.Adjacency, available region.AreaSet, target int, maxRetries int, articulation region.AreaSet, rng *rand.Rand) (region.Region, error) {
	if target <= 0 {
		return nil, fmt.Errorf("grow: graph: %w", region.ErrBadCardinality)
	}
	if len(available) <= target {
		r := available.Clone()
		for id := range r {
			available.Remove(id)
		}
		return r, nil
	}

	priority := func(id region.AreaID) int {
		n := 0
		for nbr := range adj[id] {
			if available.Has(nbr) {
				n++
			}
		}
		return -n
	}

	seedID, err := seed.GaplessSeed(adj, available, region.NewAreaSet(), rng)
	if err != nil {
		return nil, fmt.Errorf("grow: graph: %w", err)
	}

	r := region.NewAreaSet(seedID)
	available.Remove(seedID)

	h := &frontierHeap{{priority: priority(seedID), id: seedID}}
	heap.Init(h)

	retries := 0
	for h.Len() > 0 && len(r) < target {
		current := heap.Pop(h).(frontierItem).id

		for _, nbr := range adj[current].Slice() {
			if !available.Has(nbr) || articulation.Has(nbr) {
				continue
			}
			r.Add(nbr)
			available.Remove(nbr)
			heap.Push(h, frontierItem{priority: priority(nbr), id: nbr})
			if len(r) >= target {
				break
			}
		}

		if h.Len() == 0 && len(r) < target && len(available) > 0 {
			candidates := make(region.AreaSet)
			for m := range r {
				for nbr := range adj[m] {
					if available.Has(nbr) {
						candidates.Add(nbr)
					}
				}
			}
			var next region.AreaID
			if len(candidates) > 0 {
				next = region.PickUniform(candidates, rng)
			} else {
				next = region.PickUniform(available, rng)
			}
			r.Add(next)
			available.Remove(next)
			heap.Push(h, frontierItem{priority: priority(next), id: next})

			retries++
			if retries >= maxRetries {
				break
			}
		}
	}

	return r, nil
}
