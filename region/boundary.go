package region

// BoundaryOf returns the vertices of r that have at least one neighbor
// outside r in adj: {v in r : adj[v] \ r != empty}. Complexity:
// O(|r| * avg-degree).
func BoundaryOf(adj Adjacency, r Region) AreaSet {
	boundary := make(AreaSet)
	for v := range r {
		for nbr := range adj[v] {
			if !r.Has(nbr) {
				boundary.Add(v)
				break
			}
		}
	}
	return boundary
}
