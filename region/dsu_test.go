package region_test

import (
	"testing"

	"github.com/katalvlaran/prrp/region"
	"github.com/stretchr/testify/require"
)

func TestDisjointSet_UnionFind(t *testing.T) {
	members := region.NewAreaSet(1, 2, 3, 4, 5)
	d := region.NewDisjointSet(members)

	d.Union(1, 2)
	d.Union(2, 3)

	require.Equal(t, d.Find(1), d.Find(3))
	require.NotEqual(t, d.Find(1), d.Find(4))

	groups := d.Groups()
	require.Len(t, groups, 3) // {1,2,3}, {4}, {5}

	var sizes []int
	for _, g := range groups {
		sizes = append(sizes, len(g))
	}
	require.ElementsMatch(t, []int{3, 1, 1}, sizes)
}
