package metis_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/prrp/metis"
	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleTriangle(t *testing.T) {
	// 3 vertices, 3 edges, forming a triangle. METIS ids are 1-based.
	input := "3 3\n2 3\n1 3\n1 2\n"
	adj, err := metis.Parse(strings.NewReader(input))
	require.NoError(t, err)

	want := region.BuildAdjacency(map[region.AreaID][]region.AreaID{
		0: {1, 2}, 1: {0, 2}, 2: {0, 1},
	})
	require.Equal(t, want, adj)
}

func TestParse_IsolatedVertexHasBlankLine(t *testing.T) {
	input := "2 0\n\n\n"
	adj, err := metis.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, adj, 2)
	require.Empty(t, adj[0])
	require.Empty(t, adj[1])
}

func TestParse_IgnoresOptionalFmtToken(t *testing.T) {
	input := "2 1 000\n2\n1\n"
	adj, err := metis.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.True(t, adj[0].Has(1))
	require.True(t, adj[1].Has(0))
}

func TestParse_OutOfRangeNeighborIsError(t *testing.T) {
	input := "2 1\n5\n\n"
	_, err := metis.Parse(strings.NewReader(input))
	require.Error(t, err)
}

func TestParse_MissingAdjacencyLineIsError(t *testing.T) {
	input := "2 1\n2\n"
	_, err := metis.Parse(strings.NewReader(input))
	require.Error(t, err)
}

func TestParse_EmptyInputIsError(t *testing.T) {
	_, err := metis.Parse(strings.NewReader(""))
	require.Error(t, err)
}
