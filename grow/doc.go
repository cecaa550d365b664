// Package grow implements the region grower: expanding a single region
// from a seed to a target cardinality.
//
// Spatial grows by repeatedly picking a uniformly random frontier vertex
// until the target is hit or the frontier empties, retrying with a fresh
// seed up to maxRetries.
//
// Graph grows via a max-heap on unassigned-degree (most-connected
// candidates expand first), filtering candidates against a precomputed
// articulation set, tolerating stale heap priorities as U shrinks, and
// falling back first to a random neighbor of the region and then to a
// uniform pick from U when the heap empties early.
//
// Complexity: O(d) per step where d is the degree of the expanding vertex;
// O(|region| * d) overall for one grow call.
package grow
