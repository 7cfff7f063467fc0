package orbit

import "github.com/Becheler/orca/graph"

// tables holds the common-neighbor maps shared by every later pass:
// common2[{a,b}] counts nodes adjacent to both a and b; common3[{a,b,c}]
// counts nodes adjacent to all three of a, b, c, and is only kept for
// triples in which at least two of the three pairs are adjacent. Absent keys mean 0 and
// are never inserted on lookup (common2Get/common3Get), so a query never
// grows the map.
type tables struct {
	common2 map[pairKey]uint64
	common3 map[tripleKey]uint64
}

func newTables() *tables {
	return &tables{
		common2: make(map[pairKey]uint64),
		common3: make(map[tripleKey]uint64),
	}
}

func (t *tables) common2Get(k pairKey) uint64 {
	return t.common2[k]
}

func (t *tables) common3Get(k tripleKey) uint64 {
	return t.common3[k]
}

// precomputeCommonNodes walks every node x and every pair/triple of its
// neighbors, counting how many nodes see that pair or triple as a common
// neighborhood. A triple only contributes to common3 when at least two of
// its three pairs are themselves adjacent (the unconnected case never
// participates in any graphlet orbit counted here).
func precomputeCommonNodes(g *graph.Graph) *tables {
	t := newTables()
	for x := 0; x < g.N; x++ {
		neigh := g.Neighbors[x]
		for n1 := 0; n1 < len(neigh); n1++ {
			a := neigh[n1]
			for n2 := n1 + 1; n2 < len(neigh); n2++ {
				b := neigh[n2]
				t.common2[newPairKey(a, b)]++

				for n3 := n2 + 1; n3 < len(neigh); n3++ {
					c := neigh[n3]
					adj := 0
					if g.Adjacent(a, b) {
						adj++
					}
					if g.Adjacent(a, c) {
						adj++
					}
					if g.Adjacent(b, c) {
						adj++
					}
					if adj < 2 {
						continue
					}
					t.common3[newTripleKey(a, b, c)]++
				}
			}
		}
	}
	return t
}
