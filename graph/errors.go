package graph

import "github.com/Becheler/orca/orcaerr"

// New's failure modes, per spec.md §4.1: duplicate edges, out-of-range
// ids, self-loops, or a degree-vector/edge-list mismatch are all fatal and
// the Graph is not constructed. Re-exported here for callers that only
// import graph, not orcaerr.
var (
	ErrNodeIDOutOfRange  = orcaerr.ErrNodeIDOutOfRange
	ErrSelfLoop          = orcaerr.ErrSelfLoop
	ErrDuplicateEdge     = orcaerr.ErrDuplicateEdge
	ErrDegreeSumMismatch = orcaerr.ErrDegreeSumMismatch
)
