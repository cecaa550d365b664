package prrp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prrp/grow"
	"github.com/katalvlaran/prrp/merge"
	"github.com/katalvlaran/prrp/region"
	"github.com/katalvlaran/prrp/split"
)

// RunSpatial partitions adj into len(cardinalities) connected regions, the
// i-th region grown to the i-th entry of a random permutation of
// cardinalities drawn from the driver's rng (the last region's size is
// forced to whatever remains, which is why the cardinalities must sum to
// |V| exactly). Sizes are not guaranteed exact: a split that drops a minor
// component leaves its region below target, and the final connectivity
// repair can fold stranded vertices into an earlier region. adj is never
// mutated; the returned Partition's regions are freshly allocated sets.
func RunSpatial(adj region.Adjacency, p int, cardinalities []int, opts ...Option) (region.Partition, error) {
	n := len(adj)
	if err := validateCardinalities(cardinalities, p, n); err != nil {
		return nil, err
	}

	o := resolveOptions(opts)
	rng := o.rng()

	order := permute(cardinalities, rng)

	available := region.NewAreaSet(adj.Vertices()...)
	result := make(region.Partition, 0, p)

	for i := 0; i < p-1; i++ {
		r, err := grow.Spatial(adj, available, order[i], o.MaxRetries, rng)
		if err != nil {
			return nil, fmt.Errorf("prrp: run spatial: region %d: %w", i, err)
		}

		if err := merge.Pool(adj, available, r); err != nil {
			return nil, fmt.Errorf("prrp: run spatial: region %d: %w", i, err)
		}

		if len(r) > order[i] {
			shrunk, dropped, err := split.Region(adj, r, order[i], rng)
			if err != nil {
				return nil, fmt.Errorf("prrp: run spatial: region %d: %w", i, err)
			}
			r = shrunk
			for id := range dropped {
				available.Add(id)
			}
		}

		result = append(result, r)
	}

	// Whatever is left in available becomes the final region. A drop-minor-
	// component step from an earlier split could have handed vertices back
	// that no longer border each other, so available itself might not
	// induce a connected subgraph any more by the time the loop ends. Fold
	// every minor fragment into whichever already-placed region it still
	// borders before emitting it as the last region.
	repairFinalConnectivity(adj, available, result)
	result = append(result, available.Clone())

	return result, nil
}

// repairFinalConnectivity keeps available's largest component in place and
// folds every smaller one into a region in result that it still shares an
// edge with, removing it from available. A fragment bordering none of the
// placed regions (possible only if adj itself is disconnected) is left in
// available, since there is nowhere sound to put it.
func repairFinalConnectivity(adj region.Adjacency, available region.AreaSet, result region.Partition) {
	comps := region.ConnectedComponents(region.Induced(adj, available))
	if len(comps) <= 1 {
		return
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
		target := -1
		for ri, reg := range result {
			if bordersRegion(adj, c, reg) {
				target = ri
				break
			}
		}
		if target == -1 {
			continue
		}
		for id := range c {
			available.Remove(id)
			result[target].Add(id)
		}
	}
}

// bordersRegion reports whether any vertex of c has a neighbor in r.
func bordersRegion(adj region.Adjacency, c region.AreaSet, r region.Region) bool {
	for id := range c {
		for nbr := range adj[id] {
			if r.Has(nbr) {
				return true
			}
		}
	}
	return false
}

// permute returns a uniformly random permutation of c, leaving c itself
// untouched. Randomizing the assignment order (rather than always peeling
// cardinalities off in input order) equalizes selection variance across
// which region ends up as "whatever remains".
func permute(c []int, rng *rand.Rand) []int {
	out := make([]int, len(c))
	copy(out, c)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
