package prrp_test

import (
	"testing"

	prrp "github.com/katalvlaran/prrp"
	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestRunSpatial_TwelveNodeLatticeThreeRegionsOfFour(t *testing.T) {
	adj, err := region.FromGrid(3, 4)
	require.NoError(t, err)

	result, err := prrp.RunSpatial(adj, 3, []int{4, 4, 4}, prrp.WithSeed(0))
	require.NoError(t, err)
	require.Len(t, result, 3)

	seen := region.NewAreaSet()
	for _, r := range result {
		require.Len(t, r, 4)
		comps := region.ConnectedComponents(region.Induced(adj, r))
		require.Len(t, comps, 1)
		for id := range r {
			require.False(t, seen.Has(id), "regions must be pairwise disjoint")
			seen.Add(id)
		}
	}
	require.Len(t, seen, 12, "regions must cover every vertex")
}

func TestRunSpatial_DeterministicUnderSeed(t *testing.T) {
	adj, err := region.FromGrid(3, 4)
	require.NoError(t, err)

	a, err := prrp.RunSpatial(adj, 3, []int{4, 4, 4}, prrp.WithSeed(7))
	require.NoError(t, err)
	b, err := prrp.RunSpatial(adj, 3, []int{4, 4, 4}, prrp.WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestRunSpatial_SingleIsolatedVertex(t *testing.T) {
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{1: {}})
	result, err := prrp.RunSpatial(adj, 1, []int{1}, prrp.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, region.Partition{region.NewAreaSet(1)}, result)
}

func TestRunSpatial_InfeasibleCardinalitySum(t *testing.T) {
	// p=5, cardinalities sum to 15 on a 12-node lattice — must be rejected.
	adj, err := region.FromGrid(3, 4)
	require.NoError(t, err)
	_, err = prrp.RunSpatial(adj, 5, []int{3, 3, 3, 3, 3})
	require.ErrorIs(t, err, region.ErrBadCardinality)
}

func TestRunSpatial_BadCardinalityLengthMismatch(t *testing.T) {
	adj, err := region.FromGrid(2, 2)
	require.NoError(t, err)
	_, err = prrp.RunSpatial(adj, 2, []int{4})
	require.ErrorIs(t, err, region.ErrBadCardinality)
}

func TestRunSpatial_VerticesFewerThanP(t *testing.T) {
	adj, err := region.FromGrid(1, 2)
	require.NoError(t, err)
	_, err = prrp.RunSpatial(adj, 3, []int{1, 1, 1})
	require.ErrorIs(t, err, region.ErrBadCardinality)
}
