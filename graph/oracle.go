package graph

// wordBits is the number of adjacency bits packed per bitset word.
const wordBits = 64

// DenseThresholdBits is the largest bitmatrix size, in bits, for which the
// dense back-end is selected (spec.md §6: n² <= 8*100*2^20 bits, i.e. 100
// MiB of bitmatrix).
const DenseThresholdBits = 8 * 100 * int64(1<<20)

// oracle answers Adjacent(x,y) queries with one of two interchangeable
// back-ends, selected once at construction (spec.md §4.2, §9):
//
//   - dense:  a packed N·N bitset, one bit test per query.
//   - sorted: binary search over the first deg[x] entries of Neighbors[x].
//
// Both back-ends are exposed through the same concrete type with a single
// boolean branch rather than an interface, so the hottest call in the
// enumerator (see package orbit) never pays vtable dispatch.
type oracle struct {
	n         int
	dense     bool
	bits      []uint64 // bits[x*rowWords+w]; nil unless dense
	rowWords  int
	neighbors [][]int // sorted ascending; always populated, used by both paths for Neighbors access elsewhere
	deg       []int
}

// newOracle selects a back-end for a graph whose neighbor lists are
// already sorted ascending, and builds it.
func newOracle(neighbors [][]int, deg []int) *oracle {
	n := len(neighbors)
	o := &oracle{n: n, neighbors: neighbors, deg: deg}
	if useDenseOracle(n) {
		o.dense = true
		o.rowWords = (n + wordBits - 1) / wordBits
		o.bits = make([]uint64, n*o.rowWords)
		for x := 0; x < n; x++ {
			for _, y := range neighbors[x][:deg[x]] {
				o.setBit(x, y)
			}
		}
	}
	return o
}

// useDenseOracle applies the size-based policy of spec.md §6.
func useDenseOracle(n int) bool {
	return int64(n)*int64(n) <= DenseThresholdBits
}

func (o *oracle) setBit(x, y int) {
	o.bits[x*o.rowWords+y/wordBits] |= 1 << uint(y%wordBits)
}

// Adjacent reports whether x and y are connected. O(1) when dense, else
// O(log deg(x)) via binary search on the sorted neighbor list.
func (o *oracle) Adjacent(x, y int) bool {
	if o.dense {
		word := o.bits[x*o.rowWords+y/wordBits]
		return word&(1<<uint(y%wordBits)) != 0
	}

	d := o.deg[x]
	row := o.neighbors[x][:d]
	lo, hi := 0, d
	for lo < hi {
		mid := (lo + hi) / 2
		if row[mid] < y {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < d && row[lo] == y
}
