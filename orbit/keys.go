package orbit

// pairKey is an unordered pair of node ids, normalized so Lo<=Hi, making it
// safe to use as a map key regardless of the order its endpoints were
// discovered in.
type pairKey struct {
	Lo, Hi int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{Lo: a, Hi: b}
}

// tripleKey is an unordered triple of node ids, normalized ascending.
type tripleKey struct {
	A, B, C int
}

func newTripleKey(a, b, c int) tripleKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return tripleKey{A: a, B: b, C: c}
}
