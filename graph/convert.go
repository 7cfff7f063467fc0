package graph

import (
	"strconv"

	"github.com/Becheler/orca/core"
	"github.com/Becheler/orca/orcaerr"
)

const opFromCore = "graph.FromCore"

// FromCore converts a validated core.Graph into the compact, int-indexed
// Graph the orbit engine operates on, the same adapter shape as
// matrix.ToMatrix in the teacher package: walk Vertices()/Edges() once and
// re-key by a dense integer index.
//
// g's vertex IDs must be the decimal strings "0".."n-1" (the convention
// package parse uses when building the ingestion graph); this is what
// lets FromCore recover the canonical node numbering without an auxiliary
// ID map threaded through the caller.
func FromCore(g *core.Graph) (*Graph, error) {
	verts := g.Vertices()
	n := len(verts)

	deg := make([]int, n)
	edges := make([]Edge, 0, g.EdgeCount())
	seen := make(map[[2]int]struct{}, g.EdgeCount())

	for _, e := range g.Edges() {
		a, err := parseNodeID(e.From)
		if err != nil {
			return nil, err
		}
		b, err := parseNodeID(e.To)
		if err != nil {
			return nil, err
		}
		if a == b {
			return nil, orcaerr.Wrapf(opFromCore, "self-loop on %d", orcaerr.ErrSelfLoop, a)
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := seen[key]; dup {
			continue // core already rejects duplicates at AddEdge time; undirected edges appear once in Edges()
		}
		seen[key] = struct{}{}

		edges = append(edges, Edge{A: a, B: b})
		deg[a]++
		deg[b]++
	}

	return New(n, edges, deg)
}

func parseNodeID(id string) (int, error) {
	v, err := strconv.Atoi(id)
	if err != nil {
		return 0, orcaerr.Wrapf(opFromCore, "vertex id %q is not a dense integer index", orcaerr.ErrNodeIDOutOfRange, id)
	}
	return v, nil
}
