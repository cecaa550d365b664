package prrp

import (
	"math/rand"

	"github.com/katalvlaran/prrp/parallel"
	"github.com/katalvlaran/prrp/region"
)

// RunParallel produces k independent spatial solutions, each on its own
// worker-derived RNG, bounded to workers concurrent goroutines. adj is
// shared read-only across every solution: RunSpatial never mutates it, so
// no per-worker clone is needed here. A failing solution does not cancel
// its siblings — its slot's error is preserved in the returned Result.
func RunParallel(adj region.Adjacency, p int, cardinalities []int, k, workers int, rootSeed int64) []parallel.Result {
	task := func(rng *rand.Rand) (region.Partition, error) {
		return RunSpatial(adj, p, cardinalities, WithRNG(rng))
	}
	return parallel.Run(k, workers, rootSeed, task)
}

// RunParallelGraph is RunParallel's graph-driver counterpart: k independent
// RunGraph solutions. Each worker's augmented adjacency copy is
// discarded once its partition is extracted — callers needing the repaired
// graph for a particular solution should call RunGraph directly instead.
func RunParallelGraph(adj region.Adjacency, p, c, ms int, k, workers int, rootSeed int64) []GraphResult {
	out := make([]GraphResult, k)
	raw := parallel.Run(k, workers, rootSeed, func(rng *rand.Rand) (region.Partition, error) {
		partition, _, err := RunGraph(adj, p, c, ms, WithRNG(rng))
		return partition, err
	})
	for _, r := range raw {
		out[r.Index] = GraphResult{Partition: r.Partition, Err: r.Err}
	}
	return out
}

// GraphResult is one worker's RunGraph outcome within RunParallelGraph.
type GraphResult struct {
	Partition region.Partition
	Err       error
}
