package orbit

import "github.com/Becheler/orca/graph"

// scratch holds the two touched-keys buffers the enumerator reuses across
// every node, so clearing commonX/commonA between nodes costs O(touched),
// never O(n).
type scratch struct {
	commonX     []int
	commonXList []int
	ncx         int

	commonA     []int
	commonAList []int
	nca         int
}

func newScratch(n int) *scratch {
	return &scratch{
		commonX:     make([]int, n),
		commonXList: make([]int, n),
		commonA:     make([]int, n),
		commonAList: make([]int, n),
	}
}

func (s *scratch) resetX() {
	for i := 0; i < s.ncx; i++ {
		s.commonX[s.commonXList[i]] = 0
	}
	s.ncx = 0
}

func (s *scratch) resetA() {
	for i := 0; i < s.nca; i++ {
		s.commonA[s.commonAList[i]] = 0
	}
	s.nca = 0
}

// fSums accumulates the 57 auxiliary sums (named f15..f71, after the
// reference implementation's f_k) that solve.go back-substitutes into
// orbits 15-71. Indices below 15 and above 71 are unused and stay zero.
type fSums struct {
	v [72]int64
}

func (f *fSums) add(k int, delta int64) { f.v[k] += delta }
func (f *fSums) get(k int) int64        { return f.v[k] }

// enumerateNode fills orbits 0-3 (Pass A, spec.md §4.6) and orbits 4-14 plus
// the fSums accumulators (Pass B, the 11-pattern table) for a single node
// x. orbits is indexed exactly like the final per-node row; only entries
// 0-14 are touched here.
func enumerateNode(g *graph.Graph, t *tables, tri []uint64, x int, sc *scratch) (orbits [73]int64, f fSums) {
	sc.resetX()
	deg := g.Deg
	xn := g.Neighbors[x]
	xinc := g.Inc[x]

	// Pass A: orbits 0-3, and commonX[b] = number of neighbors a of x that
	// are adjacent to b, for every b that is neither x nor a neighbor of x.
	orbits[0] = int64(deg[x])
	for nx1 := 0; nx1 < len(xn); nx1++ {
		a := xn[nx1]
		for nx2 := nx1 + 1; nx2 < len(xn); nx2++ {
			b := xn[nx2]
			if g.Adjacent(a, b) {
				orbits[3]++
			} else {
				orbits[2]++
			}
		}

		an := g.Neighbors[a]
		for na := 0; na < len(an); na++ {
			b := an[na]
			if b != x && !g.Adjacent(x, b) {
				orbits[1]++
				if sc.commonX[b] == 0 {
					sc.commonXList[sc.ncx] = b
					sc.ncx++
				}
				sc.commonX[b]++
			}
		}
	}

	// Pass B: for each neighbor a of x, the 11 rooted 4-node patterns
	// containing the edge x-a (orbits 4-14), each also feeding the f_k sums.
	for nx1 := 0; nx1 < len(xn); nx1++ {
		a := xinc[nx1].Neighbor
		xa := xinc[nx1].EdgeID

		sc.resetA()
		an := g.Neighbors[a]
		for na := 0; na < len(an); na++ {
			b := an[na]
			bn := g.Neighbors[b]
			for nb := 0; nb < len(bn); nb++ {
				c := bn[nb]
				if c == a || g.Adjacent(a, c) {
					continue
				}
				if sc.commonA[c] == 0 {
					sc.commonAList[sc.nca] = c
					sc.nca++
				}
				sc.commonA[c]++
			}
		}

		// orbit 14: tetrahedron (K4).
		for nx2 := nx1 + 1; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			xb := xinc[nx2].EdgeID
			if !g.Adjacent(a, b) {
				continue
			}
			for nx3 := nx2 + 1; nx3 < len(xn); nx3++ {
				c := xinc[nx3].Neighbor
				xc := xinc[nx3].EdgeID
				if !g.Adjacent(a, c) || !g.Adjacent(b, c) {
					continue
				}
				orbits[14]++
				f.add(70, int64(t.common3Get(newTripleKey(a, b, c)))-1)

				if tri[xa] > 2 && tri[xb] > 2 {
					f.add(71, int64(t.common3Get(newTripleKey(x, a, b)))-1)
				}
				if tri[xa] > 2 && tri[xc] > 2 {
					f.add(71, int64(t.common3Get(newTripleKey(x, a, c)))-1)
				}
				if tri[xb] > 2 && tri[xc] > 2 {
					f.add(71, int64(t.common3Get(newTripleKey(x, b, c)))-1)
				}
				f.add(67, int64(tri[xa])-2+int64(tri[xb])-2+int64(tri[xc])-2)
				f.add(66, int64(t.common2Get(newPairKey(a, b)))-2)
				f.add(66, int64(t.common2Get(newPairKey(a, c)))-2)
				f.add(66, int64(t.common2Get(newPairKey(b, c)))-2)
				f.add(58, int64(deg[x])-3)
				f.add(57, int64(deg[a])-3+int64(deg[b])-3+int64(deg[c])-3)
			}
		}

		// orbit 13: diamond, rooted on the node incident to both chords.
		for nx2 := 0; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			xb := xinc[nx2].EdgeID
			if !g.Adjacent(a, b) {
				continue
			}
			for nx3 := nx2 + 1; nx3 < len(xn); nx3++ {
				c := xinc[nx3].Neighbor
				xc := xinc[nx3].EdgeID
				if !g.Adjacent(a, c) || g.Adjacent(b, c) {
					continue
				}
				orbits[13]++

				if tri[xb] > 1 && tri[xc] > 1 {
					f.add(69, int64(t.common3Get(newTripleKey(x, b, c)))-1)
				}
				f.add(68, int64(t.common3Get(newTripleKey(a, b, c)))-1)
				f.add(64, int64(t.common2Get(newPairKey(b, c)))-2)
				f.add(61, int64(tri[xb])-1+int64(tri[xc])-1)
				f.add(60, int64(t.common2Get(newPairKey(a, b)))-1)
				f.add(60, int64(t.common2Get(newPairKey(a, c)))-1)
				f.add(55, int64(tri[xa])-2)
				f.add(48, int64(deg[b])-2+int64(deg[c])-2)
				f.add(42, int64(deg[x])-3)
				f.add(41, int64(deg[a])-3)
			}
		}

		// orbit 12: diamond, rooted on the node incident to one chord.
		for nx2 := nx1 + 1; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			if !g.Adjacent(a, b) {
				continue
			}
			for na := 0; na < len(an); na++ {
				c := g.Inc[a][na].Neighbor
				ac := g.Inc[a][na].EdgeID
				if c == x || g.Adjacent(x, c) || !g.Adjacent(b, c) {
					continue
				}
				orbits[12]++
				if tri[ac] > 1 {
					f.add(65, int64(t.common3Get(newTripleKey(a, b, c))))
				}
				f.add(63, int64(sc.commonX[c])-2)
				f.add(59, int64(tri[ac])-1+int64(t.common2Get(newPairKey(b, c)))-1)
				f.add(54, int64(t.common2Get(newPairKey(a, b)))-2)
				f.add(47, int64(deg[x])-2)
				f.add(46, int64(deg[c])-2)
				f.add(40, int64(deg[a])-3+int64(deg[b])-3)
			}
		}

		// orbit 8: 4-cycle.
		for nx2 := nx1 + 1; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			xb := xinc[nx2].EdgeID
			if g.Adjacent(a, b) {
				continue
			}
			for na := 0; na < len(an); na++ {
				c := g.Inc[a][na].Neighbor
				ac := g.Inc[a][na].EdgeID
				if c == x || g.Adjacent(x, c) || !g.Adjacent(b, c) {
					continue
				}
				orbits[8]++
				if tri[ac] > 0 {
					f.add(62, int64(t.common3Get(newTripleKey(a, b, c))))
				}
				f.add(53, int64(tri[xa])+int64(tri[xb]))
				f.add(51, int64(tri[ac])+int64(t.common2Get(newPairKey(c, b))))
				f.add(50, int64(sc.commonX[c])-2)
				f.add(49, int64(sc.commonA[b])-2)
				f.add(38, int64(deg[x])-2)
				f.add(37, int64(deg[a])-2+int64(deg[b])-2)
				f.add(36, int64(deg[c])-2)
			}
		}

		// orbit 11: paw, rooted on the degree-3 node of the triangle.
		for nx2 := nx1 + 1; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			if !g.Adjacent(a, b) {
				continue
			}
			for nx3 := 0; nx3 < len(xn); nx3++ {
				c := xinc[nx3].Neighbor
				xc := xinc[nx3].EdgeID
				if c == a || c == b || g.Adjacent(a, c) || g.Adjacent(b, c) {
					continue
				}
				orbits[11]++
				f.add(44, int64(tri[xc]))
				f.add(33, int64(deg[x])-3)
				f.add(30, int64(deg[c])-1)
				f.add(26, int64(deg[a])-2+int64(deg[b])-2)
			}
		}

		// orbit 10: paw, rooted on the pendant-adjacent triangle node.
		for nx2 := 0; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			if !g.Adjacent(a, b) {
				continue
			}
			bn := g.Neighbors[b]
			binc := g.Inc[b]
			for nb := 0; nb < len(bn); nb++ {
				c := binc[nb].Neighbor
				bc := binc[nb].EdgeID
				if c == x || c == a || g.Adjacent(a, c) || g.Adjacent(x, c) {
					continue
				}
				orbits[10]++
				f.add(52, int64(sc.commonA[c])-1)
				f.add(43, int64(tri[bc]))
				f.add(32, int64(deg[b])-3)
				f.add(29, int64(deg[c])-1)
				f.add(25, int64(deg[a])-2)
			}
		}

		// orbit 9: paw, rooted on the pendant node.
		ainc := g.Inc[a]
		for na1 := 0; na1 < len(an); na1++ {
			b := ainc[na1].Neighbor
			if b == x || g.Adjacent(x, b) {
				continue
			}
			for na2 := na1 + 1; na2 < len(an); na2++ {
				c := ainc[na2].Neighbor
				ab := ainc[na1].EdgeID
				ac := ainc[na2].EdgeID
				if c == x || !g.Adjacent(b, c) || g.Adjacent(x, c) {
					continue
				}
				orbits[9]++
				if tri[ab] > 1 && tri[ac] > 1 {
					f.add(56, int64(t.common3Get(newTripleKey(a, b, c))))
				}
				f.add(45, int64(t.common2Get(newPairKey(b, c)))-1)
				f.add(39, int64(tri[ab])-1+int64(tri[ac])-1)
				f.add(31, int64(deg[a])-3)
				f.add(28, int64(deg[x])-1)
				f.add(24, int64(deg[b])-2+int64(deg[c])-2)
			}
		}

		// orbit 4: path of length 3, rooted at an end.
		for na := 0; na < len(an); na++ {
			b := ainc[na].Neighbor
			if b == x || g.Adjacent(x, b) {
				continue
			}
			bn := g.Neighbors[b]
			binc := g.Inc[b]
			for nb := 0; nb < len(bn); nb++ {
				c := binc[nb].Neighbor
				bc := binc[nb].EdgeID
				if c == a || g.Adjacent(a, c) || g.Adjacent(x, c) {
					continue
				}
				orbits[4]++
				f.add(35, int64(sc.commonA[c])-1)
				f.add(34, int64(sc.commonX[c]))
				f.add(27, int64(tri[bc]))
				f.add(18, int64(deg[b])-2)
				f.add(16, int64(deg[x])-1)
				f.add(15, int64(deg[c])-1)
			}
		}

		// orbit 5: path of length 3, rooted at the second node.
		for nx2 := 0; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			if b == a || g.Adjacent(a, b) {
				continue
			}
			bn := g.Neighbors[b]
			for nb := 0; nb < len(bn); nb++ {
				c := bn[nb]
				if c == x || g.Adjacent(a, c) || g.Adjacent(x, c) {
					continue
				}
				orbits[5]++
				f.add(17, int64(deg[a])-1)
			}
		}

		// orbit 6: claw, rooted at the center's neighbor.
		for na1 := 0; na1 < len(an); na1++ {
			b := ainc[na1].Neighbor
			if b == x || g.Adjacent(x, b) {
				continue
			}
			for na2 := na1 + 1; na2 < len(an); na2++ {
				c := ainc[na2].Neighbor
				if c == x || g.Adjacent(x, c) || g.Adjacent(b, c) {
					continue
				}
				orbits[6]++
				f.add(22, int64(deg[a])-3)
				f.add(20, int64(deg[x])-1)
				f.add(19, int64(deg[b])-1+int64(deg[c])-1)
			}
		}

		// orbit 7: claw, rooted at the center.
		for nx2 := nx1 + 1; nx2 < len(xn); nx2++ {
			b := xinc[nx2].Neighbor
			if g.Adjacent(a, b) {
				continue
			}
			for nx3 := nx2 + 1; nx3 < len(xn); nx3++ {
				c := xinc[nx3].Neighbor
				if g.Adjacent(a, c) || g.Adjacent(b, c) {
					continue
				}
				orbits[7]++
				f.add(23, int64(deg[x])-3)
				f.add(21, int64(deg[a])-1+int64(deg[b])-1+int64(deg[c])-1)
			}
		}
	}

	return orbits, f
}
