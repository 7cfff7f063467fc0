package orbit

import "github.com/Becheler/orca/graph"

// triangleCounts returns, for every edge id, the number of nodes forming a
// triangle with that edge's endpoints. Both neighbor lists are already
// sorted ascending (graph.New's construction contract), so each edge is
// resolved by a linear two-pointer merge rather than per-node binary search.
func triangleCounts(g *graph.Graph) []uint64 {
	tri := make([]uint64, g.M)
	for i, e := range g.Edges {
		xn := g.Neighbors[e.A]
		yn := g.Neighbors[e.B]
		xi, yi := 0, 0
		for xi < len(xn) && yi < len(yn) {
			switch {
			case xn[xi] == yn[yi]:
				tri[i]++
				xi++
				yi++
			case xn[xi] < yn[yi]:
				xi++
			default:
				yi++
			}
		}
	}
	return tri
}
