package grow

import "github.com/katalvlaran/prrp/region"

// frontierItem pairs a candidate area with its priority at push time:
// -|adj[v] ∩ U|, so the max-connectivity candidate pops first. Priorities
// are allowed to go stale as U shrinks; correctness only needs a heuristic
// ordering, not an exact one.
type frontierItem struct {
	priority int
	id       region.AreaID
}

// frontierHeap is a lazy priority queue of frontierItem: a
// container/heap.Interface over a slice of value structs, min-heap by
// priority. Ties break on id, giving pop order a total order over
// (priority, id) so behavior stays reproducible under a fixed RNG (the RNG
// itself never drives heap order, but a total order keeps it identical
// across runs).
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].id < h[j].id
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(frontierItem)) }

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
