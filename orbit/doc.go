// Package orbit counts graphlet degree vectors: for every node of a simple
// undirected graph, how many times the node participates in each of the 73
// orbits of connected graphlets on 2 to 5 nodes.
//
// The engine runs in five passes over a *graph.Graph, each building on the
// last:
//
//   - common.go:    common2/common3 — how many nodes are adjacent to a given
//     pair/triple of nodes.
//   - triangles.go: per-edge triangle counts.
//   - clique5.go:   per-node full 5-clique counts.
//   - enumerate.go: orbits 0-3 directly, orbits 4-14 by pattern, plus the 57
//     auxiliary f_k sums those patterns feed.
//   - solve.go:     the remaining orbits 15-71 from the f_k sums by back
//     substitution against the already-solved orbits.
//
// Session wires all five into one entry point, Count.
package orbit
