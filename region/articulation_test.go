package region_test

import (
	"testing"

	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestArticulationPoints_Path(t *testing.T) {
	// 1-2-3-4-5: every internal vertex is a cut vertex.
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{
		1: {2}, 2: {1, 3}, 3: {2, 4}, 4: {3, 5}, 5: {4},
	})
	ap := region.ArticulationPoints(region.InducedNeighbors(adj))
	require.Equal(t, region.NewAreaSet(2, 3, 4), ap)
}

func TestArticulationPoints_Cycle(t *testing.T) {
	// A simple cycle has no articulation points.
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{
		1: {2}, 2: {1, 3}, 3: {2, 4}, 4: {3, 1},
	})
	ap := region.ArticulationPoints(region.InducedNeighbors(adj))
	require.Empty(t, ap)
}

func TestArticulationPoints_DisconnectedGraph(t *testing.T) {
	// Two separate path components: {1-2-3} and {10-11-12}.
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{
		1: {2}, 2: {1, 3}, 3: {2},
		10: {11}, 11: {10, 12}, 12: {11},
	})
	ap := region.ArticulationPoints(region.InducedNeighbors(adj))
	require.Equal(t, region.NewAreaSet(2, 11), ap)
}

func TestArticulationPoints_Star(t *testing.T) {
	// Center 0 connected to leaves 1..4: center is the sole cut vertex
	// (a root with more than one DFS child).
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{
		0: {1, 2, 3, 4}, 1: {0}, 2: {0}, 3: {0}, 4: {0},
	})
	ap := region.ArticulationPoints(region.InducedNeighbors(adj))
	require.Equal(t, region.NewAreaSet(0), ap)
}
