package graph

import (
	"sort"

	"github.com/Becheler/orca/orcaerr"
)

const opNew = "graph.New"

// New builds a Graph from a validated edge list and degree vector,
// following the construction contract of spec.md §4.1.
//
// Preconditions checked here (defense in depth; a well-formed parse.Parse
// result never trips them): every edge has 0<=a,b<n and a!=b, no duplicate
// undirected edge (in either orientation), and sum(deg) == 2*len(edges).
// Violations return a wrapped orcaerr sentinel and no Graph is constructed.
// An edge given as {b,a} with b>a is stored as {a,b}, so Edges keeps A<B.
//
// Algorithm: allocate Neighbors[x]/Inc[x] of length deg[x]; walk edges in
// id order, placing each endpoint in the other's next free slot; sort
// every row by neighbor id (jointly with Inc) once all edges are placed.
func New(n int, edges []Edge, deg []int) (*Graph, error) {
	if len(deg) != n {
		return nil, orcaerr.Wrapf(opNew, "deg has length %d, want %d", orcaerr.ErrDegreeSumMismatch, len(deg), n)
	}

	var degSum int
	for _, d := range deg {
		degSum += d
	}
	if degSum != 2*len(edges) {
		return nil, orcaerr.Wrapf(opNew, "sum(deg)=%d != 2*m=%d", orcaerr.ErrDegreeSumMismatch, degSum, 2*len(edges))
	}

	neighbors := make([][]int, n)
	inc := make([][]Incidence, n)
	for x := 0; x < n; x++ {
		if deg[x] < 0 {
			return nil, orcaerr.Wrapf(opNew, "node %d has negative degree", orcaerr.ErrDegreeSumMismatch, x)
		}
		neighbors[x] = make([]int, deg[x])
		inc[x] = make([]Incidence, deg[x])
	}

	seen := make(map[Edge]struct{}, len(edges))
	normalized := make([]Edge, len(edges))
	cursor := make([]int, n)
	for eid, e := range edges {
		if e.A > e.B {
			e.A, e.B = e.B, e.A
		}
		normalized[eid] = e
		if e.A == e.B {
			return nil, orcaerr.Wrapf(opNew, "edge %d is a self-loop on %d", orcaerr.ErrSelfLoop, eid, e.A)
		}
		if e.A < 0 || e.B < 0 || e.A >= n || e.B >= n {
			return nil, orcaerr.Wrapf(opNew, "edge %d={%d,%d} out of range [0,%d)", orcaerr.ErrNodeIDOutOfRange, eid, e.A, e.B, n)
		}
		if _, dup := seen[e]; dup {
			return nil, orcaerr.Wrapf(opNew, "edge %d={%d,%d} duplicated", orcaerr.ErrDuplicateEdge, eid, e.A, e.B)
		}
		seen[e] = struct{}{}

		a, b := e.A, e.B
		if cursor[a] >= len(neighbors[a]) || cursor[b] >= len(neighbors[b]) {
			return nil, orcaerr.Wrapf(opNew, "degree vector underflows at edge %d", orcaerr.ErrDegreeSumMismatch, eid)
		}
		neighbors[a][cursor[a]] = b
		inc[a][cursor[a]] = Incidence{Neighbor: b, EdgeID: eid}
		cursor[a]++

		neighbors[b][cursor[b]] = a
		inc[b][cursor[b]] = Incidence{Neighbor: a, EdgeID: eid}
		cursor[b]++
	}

	for x := 0; x < n; x++ {
		sortNeighborRow(neighbors[x], inc[x])
	}

	g := &Graph{
		N:         n,
		M:         len(edges),
		Deg:       append([]int(nil), deg...),
		Neighbors: neighbors,
		Inc:       inc,
		Edges:     normalized,
	}
	g.oracle = newOracle(g.Neighbors, g.Deg)
	return g, nil
}

// sortNeighborRow stable-co-sorts neighbors and inc by neighbor id
// ascending, preserving the invariant that inc[i] describes neighbors[i].
func sortNeighborRow(neighbors []int, inc []Incidence) {
	idx := make([]int, len(neighbors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return neighbors[idx[i]] < neighbors[idx[j]] })

	sortedN := make([]int, len(neighbors))
	sortedI := make([]Incidence, len(inc))
	for newPos, oldPos := range idx {
		sortedN[newPos] = neighbors[oldPos]
		sortedI[newPos] = inc[oldPos]
	}
	copy(neighbors, sortedN)
	copy(inc, sortedI)
}
