package gdvcheck

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	orcagraph "github.com/Becheler/orca/graph"
)

// toGonum builds a simple.UndirectedGraph mirroring g's edge set, node ids
// kept identical so counts can be compared index-for-index against g.
func toGonum(g *orcagraph.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.N; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges {
		ug.SetEdge(ug.NewEdge(simple.Node(int64(e.A)), simple.Node(int64(e.B))))
	}
	return ug
}

// CountTriangles returns the total number of triangles in g (each counted
// once), computed by intersecting neighbor sets via gonum's graph.Graph
// interface rather than orca's own sorted-list/bitset oracle.
func CountTriangles(g *orcagraph.Graph) uint64 {
	ug := toGonum(g)
	var total uint64
	for a := 0; a < g.N; a++ {
		neighborsA := graph.NodesOf(ug.From(int64(a)))
		for _, bn := range neighborsA {
			b := bn.ID()
			if b <= int64(a) {
				continue
			}
			for _, cn := range graph.NodesOf(ug.From(b)) {
				c := cn.ID()
				if c <= b {
					continue
				}
				if ug.HasEdgeBetween(int64(a), c) {
					total++
				}
			}
		}
	}
	return total
}

// CountP3 returns the total number of induced paths on 3 nodes (a path
// a-b-c with a and c not adjacent), counted once per unordered endpoint
// pair sharing a center.
func CountP3(g *orcagraph.Graph) uint64 {
	ug := toGonum(g)
	var total uint64
	for b := 0; b < g.N; b++ {
		neighbors := graph.NodesOf(ug.From(int64(b)))
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				a, c := neighbors[i].ID(), neighbors[j].ID()
				if !ug.HasEdgeBetween(a, c) {
					total++
				}
			}
		}
	}
	return total
}
