package prrp

import (
	"fmt"

	"github.com/katalvlaran/prrp/grow"
	"github.com/katalvlaran/prrp/merge"
	"github.com/katalvlaran/prrp/region"
	"github.com/katalvlaran/prrp/split"
)

// RunGraph partitions adj into regions, each grown toward target
// cardinality C and split whenever it overflows MaxSplit. Growth stops once
// p regions have been emitted, but a split emits all of its pieces at once,
// so the result can hold more than p regions. Unlike RunSpatial
// it never fails on a stalled growth attempt — a region that cannot reach C
// is simply emitted as-is and the loop moves on; the finishing pass below
// picks up whatever growth left behind.
//
// adj is never mutated: RunGraph clones it internally and returns that
// clone as the second result, carrying whatever edges the region-repair
// passes inserted. Callers that need the original graph untouched can
// simply discard the returned adjacency; callers that want the augmented
// graph (e.g. to re-run analysis with the repaired topology) use it
// directly.
func RunGraph(adj region.Adjacency, p int, c int, ms int, opts ...Option) (region.Partition, region.Adjacency, error) {
	if p < 1 {
		return nil, nil, fmt.Errorf("prrp: run graph: %w", region.ErrBadCardinality)
	}
	if c > len(adj) {
		return nil, nil, fmt.Errorf("prrp: run graph: target cardinality %d exceeds |V|=%d: %w", c, len(adj), region.ErrBadCardinality)
	}
	if len(adj) < p {
		return nil, nil, fmt.Errorf("prrp: run graph: |V|=%d < p=%d: %w", len(adj), p, region.ErrBadCardinality)
	}

	o := resolveOptions(opts)
	o.MaxSplit = ms
	rng := o.rng()

	working := adj.Clone()
	ap := region.ArticulationPoints(region.InducedNeighbors(working))

	unassigned := region.NewAreaSet(working.Vertices()...)
	var result region.Partition
	partitionID := 1

	for len(unassigned) > 0 && partitionID <= p {
		grown, err := grow.Graph(working, unassigned, c, o.MaxRetries, ap, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("prrp: run graph: partition %d: %w", partitionID, err)
		}

		before := grown.Clone()
		merge.RegionComponents(working, grown)
		dropped := before.Difference(grown)
		for id := range dropped {
			unassigned.Add(id)
		}

		if o.MaxSplit > 0 && len(grown) > o.MaxSplit {
			shrunk, extra, err := split.Partition(working, grown, c, rng)
			if err != nil {
				return nil, nil, fmt.Errorf("prrp: run graph: partition %d: %w", partitionID, err)
			}
			result = append(result, shrunk)
			partitionID++
			for _, e := range extra {
				result = append(result, e)
				partitionID++
			}
		} else {
			result = append(result, grown)
			partitionID++
		}
	}

	assignFinishingPass(working, unassigned, result)
	for i := range result {
		merge.PostFixup(working, result[i])
	}

	return result, working, nil
}

// assignFinishingPass folds every vertex left in unassigned into the
// region with which it shares the most edges, breaking ties by smallest
// region size and then by smallest index into result. This only runs if p
// regions filled up before unassigned emptied.
func assignFinishingPass(adj region.Adjacency, unassigned region.AreaSet, result region.Partition) {
	for _, v := range unassigned.Slice() {
		bestIdx := -1
		bestScore := -1
		for i, r := range result {
			score := 0
			for nbr := range adj[v] {
				if r.Has(nbr) {
					score++
				}
			}
			if bestIdx == -1 ||
				score > bestScore ||
				(score == bestScore && len(r) < len(result[bestIdx])) ||
				(score == bestScore && len(r) == len(result[bestIdx]) && i < bestIdx) {
				bestIdx = i
				bestScore = score
			}
		}
		if bestIdx >= 0 {
			result[bestIdx].Add(v)
		}
	}
}
