package region_test

import (
	"testing"

	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestBoundaryOf(t *testing.T) {
	// 1-2-3-4 path; region {1,2,3}; 4 is outside.
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{
		1: {2}, 2: {1, 3}, 3: {2, 4}, 4: {3},
	})
	r := region.NewAreaSet(1, 2, 3)
	boundary := region.BoundaryOf(adj, r)
	require.Equal(t, region.NewAreaSet(3), boundary, "only 3 has a neighbor (4) outside the region")
}

func TestBoundaryOf_WholeGraphHasNoBoundary(t *testing.T) {
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{1: {2}, 2: {1}})
	r := region.NewAreaSet(1, 2)
	require.Empty(t, region.BoundaryOf(adj, r))
}
