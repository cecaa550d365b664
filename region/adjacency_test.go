package region_test

import (
	"testing"

	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacency_SymmetrizesAndDropsSelfLoops(t *testing.T) {
	raw := map[region.AreaID][]region.AreaID{
		1: {2, 1}, // self-loop on 1 must be dropped
		2: {},     // edge 1->2 only listed one direction
		3: {3},    // isolated except the dropped self-loop
	}
	adj := region.BuildAdjacency(raw)

	require.NoError(t, adj.Validate())
	require.True(t, adj[1].Has(2))
	require.True(t, adj[2].Has(1), "missing edge must be auto-symmetrized")
	require.False(t, adj[1].Has(1))
	require.Empty(t, adj[3])
}

func TestBuildAdjacency_Idempotent(t *testing.T) {
	raw := map[region.AreaID][]region.AreaID{
		1: {2, 3},
		2: {1},
		3: {1},
	}
	a := region.BuildAdjacency(raw)
	b := region.BuildAdjacency(raw)
	require.Equal(t, a, b)
}

func TestFromGrid_MatchesRookMap(t *testing.T) {
	// a 3x4 grid's adjacency must equal the rook map
	// (i,j) <-> (i±1,j), (i,j±1).
	const rows, cols = 3, 4
	adj, err := region.FromGrid(rows, cols)
	require.NoError(t, err)
	require.NoError(t, adj.Validate())

	id := func(r, c int) region.AreaID { return region.AreaID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			want := region.NewAreaSet()
			if r > 0 {
				want.Add(id(r-1, c))
			}
			if r+1 < rows {
				want.Add(id(r+1, c))
			}
			if c > 0 {
				want.Add(id(r, c-1))
			}
			if c+1 < cols {
				want.Add(id(r, c+1))
			}
			require.Equal(t, want, adj[id(r, c)], "cell (%d,%d)", r, c)
		}
	}
}

func TestFromGrid_RejectsNonPositiveDims(t *testing.T) {
	_, err := region.FromGrid(0, 3)
	require.ErrorIs(t, err, region.ErrBadCardinality)
}

func TestFromPolygons_UnitSquaresMatchGrid(t *testing.T) {
	// Two unit squares sharing a vertical edge at x=1 must be adjacent;
	// two squares sharing only a corner must not be.
	square := func(id region.AreaID, x0, y0 float64) region.Polygon {
		return region.Polygon{ID: id, Vertices: []region.Point{
			{X: x0, Y: y0}, {X: x0 + 1, Y: y0}, {X: x0 + 1, Y: y0 + 1}, {X: x0, Y: y0 + 1},
		}}
	}
	polys := []region.Polygon{
		square(0, 0, 0), // [0,1]x[0,1]
		square(1, 1, 0), // [1,2]x[0,1], shares edge x=1 with area 0
		square(2, 1, 1), // [1,2]x[1,2], shares only the corner (1,1) with area 0
	}
	adj := region.FromPolygons(polys)

	require.True(t, adj[0].Has(1), "squares sharing a full edge must be adjacent")
	require.True(t, adj[1].Has(2), "squares sharing a full edge must be adjacent")
	require.False(t, adj[0].Has(2), "squares sharing only a corner must not be adjacent")

	// A 3x4 mesh of unit squares, cell (r,c) as area r*4+c, must give the
	// same adjacency as FromGrid(3, 4).
	const rows, cols = 3, 4
	var mesh []region.Polygon
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			mesh = append(mesh, square(region.AreaID(r*cols+c), float64(c), float64(r)))
		}
	}
	grid, err := region.FromGrid(rows, cols)
	require.NoError(t, err)
	require.Equal(t, grid, region.FromPolygons(mesh))
}

func TestAdjacency_ValidateDetectsAsymmetry(t *testing.T) {
	adj := region.Adjacency{
		1: region.NewAreaSet(2),
		2: region.NewAreaSet(),
	}
	err := adj.Validate()
	require.ErrorIs(t, err, region.ErrCorruptAdjacency)
}

func TestAdjacency_Clone(t *testing.T) {
	adj := region.BuildAdjacency(map[region.AreaID][]region.AreaID{1: {2}, 2: {1}})
	clone := adj.Clone()
	clone.AddEdge(1, 3)
	require.False(t, adj[1].Has(3), "mutating the clone must not affect the original")
}
