package orbit

import "github.com/Becheler/orca/graph"

// countFullCliques5 counts, per node, how many 5-cliques (K5 subgraphs) the
// node belongs to. It enumerates each 5-clique {x,y,z,zz,zzz} exactly once
// by rank: y is a neighbor of x with y<x; z, zz and zzz are common
// neighbors of x and y below y, taken in ascending order z<zz<zzz, with zz
// and zzz both adjacent to z and to each other — the same rank-ordering
// trick the reference implementation uses to avoid the 5!-fold overcount a
// naive enumeration would produce.
func countFullCliques5(g *graph.Graph) []uint64 {
	c5 := make([]uint64, g.N)
	neigh := make([]int, g.N)
	neigh2 := make([]int, g.N)

	for x := 0; x < g.N; x++ {
		xn := g.Neighbors[x]
		for nx := 0; nx < len(xn); nx++ {
			y := xn[nx]
			if y >= x {
				break
			}
			nn := 0
			yn := g.Neighbors[y]
			for ny := 0; ny < len(yn); ny++ {
				z := yn[ny]
				if z >= y {
					break
				}
				if g.Adjacent(x, z) {
					neigh[nn] = z
					nn++
				}
			}

			for i := 0; i < nn; i++ {
				z := neigh[i]
				nn2 := 0
				for j := i + 1; j < nn; j++ {
					zz := neigh[j]
					if g.Adjacent(z, zz) {
						neigh2[nn2] = zz
						nn2++
					}
				}

				for i2 := 0; i2 < nn2; i2++ {
					zz := neigh2[i2]
					for j2 := i2 + 1; j2 < nn2; j2++ {
						zzz := neigh2[j2]
						if g.Adjacent(zz, zzz) {
							c5[x]++
							c5[y]++
							c5[z]++
							c5[zz]++
							c5[zzz]++
						}
					}
				}
			}
		}
	}
	return c5
}
