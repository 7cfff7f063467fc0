// Package graph provides the immutable, post-construction graph store used
// by the orbit-counting engine: a dense integer-indexed adjacency
// representation plus an adjacency oracle chosen for the graph's size.
//
// What:
//
//   - Graph: nodes are integers in [0,n); Deg, Neighbors, Inc, Edges are
//     built once from a validated edge list and never mutated again.
//   - Oracle: are_adjacent(x,y) answered in O(1) via a packed bitset for
//     graphs under the size threshold, or O(log deg) via binary search on
//     Neighbors otherwise. Both back-ends agree on every input; callers
//     never see which one is active.
//
// Why:
//
//   - The orbit enumerator (see package orbit) issues billions of adjacency
//     queries and neighbor-list scans per run; a build-once, read-many
//     structure with a size-tuned oracle keeps that pass cache-friendly
//     without paying per-call interface dispatch.
//
// This package deliberately does not mirror core.Graph's mutability or
// locking: the GDV graph is fixed at construction and read by a single
// goroutine for the lifetime of one orbit.Session (see spec.md §5), so a
// sync.RWMutex would be pure overhead with no caller that needs it.
package graph
