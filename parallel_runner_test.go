package prrp_test

import (
	"fmt"
	"testing"

	prrp "github.com/katalvlaran/prrp"
	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestRunParallel_ProducesKSolutionsCoveringAllVertices(t *testing.T) {
	adj, err := region.FromGrid(3, 4)
	require.NoError(t, err)

	results := prrp.RunParallel(adj, 3, []int{4, 4, 4}, 3, 2, 42)
	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.Len(t, r.Partition, 3)
		seen := region.NewAreaSet()
		for _, reg := range r.Partition {
			for id := range reg {
				seen.Add(id)
			}
		}
		require.Len(t, seen, 12)
	}
}

func TestRunParallel_IndependenceAcrossSolutions(t *testing.T) {
	// k=3, seed_root=42, at least two of the three solutions must differ.
	adj, err := region.FromGrid(3, 4)
	require.NoError(t, err)

	results := prrp.RunParallel(adj, 3, []int{4, 4, 4}, 3, 3, 42)
	require.Len(t, results, 3)

	distinct := map[string]bool{}
	for _, r := range results {
		require.NoError(t, r.Err)
		distinct[partitionKey(r.Partition)] = true
	}
	require.Greater(t, len(distinct), 1, "parallel solutions must not all be identical")
}

func partitionKey(p region.Partition) string {
	key := ""
	for _, r := range p {
		key += fmt.Sprint(r.Slice()) + "|"
	}
	return key
}

func TestRunParallelGraph_ProducesKSolutions(t *testing.T) {
	adj, err := region.FromGrid(3, 4)
	require.NoError(t, err)

	results := prrp.RunParallelGraph(adj, 3, 4, 6, 3, 2, 1)
	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotEmpty(t, r.Partition)
	}
}
