package graph

// Edge is an unordered pair {A,B} with A<B; edge ids are dense in [0,M).
type Edge struct {
	A, B int
}

// Incidence pairs a neighbor id with the id of the edge connecting it to
// the owning node, kept parallel to Graph.Neighbors (same order, same
// index).
type Incidence struct {
	Neighbor int
	EdgeID   int
}

// Graph is the immutable, post-construction view of spec.md §3: nodes are
// integers in [0,N); Neighbors[x] is sorted ascending; Inc[x] is the
// parallel (neighbor, edge id) list; Edges is dense-indexed by edge id.
//
// A Graph is built once (see New) and never mutated again. It owns an
// adjacency oracle selected by size at construction time (see oracle.go).
type Graph struct {
	N, M      int
	Deg       []int
	Neighbors [][]int
	Inc       [][]Incidence
	Edges     []Edge

	oracle *oracle
}

// Adjacent reports whether x and y are connected by an edge. O(1) when the
// dense bitmatrix oracle was selected, O(log deg(x)) otherwise. Both
// back-ends agree on every input (spec.md §8, invariant 5).
func (g *Graph) Adjacent(x, y int) bool {
	return g.oracle.Adjacent(x, y)
}

// UsesDenseOracle reports which adjacency back-end this Graph selected;
// exposed only so tests can exercise both code paths deliberately.
func (g *Graph) UsesDenseOracle() bool {
	return g.oracle.dense
}
