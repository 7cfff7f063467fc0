package orbit

import (
	"github.com/Becheler/orca/graph"
	"github.com/Becheler/orca/orcaerr"
)

const opCount = "orbit.Count"

// Session runs one graphlet degree vector computation. It is not safe for
// concurrent reuse across graphs; construct a fresh Session per Count call
// (spec.md §5: single-threaded, synchronous core, no cross-session aliasing).
type Session struct {
	// Progress, if set, is invoked at the boundaries of the four stages
	// "common nodes", "triangles", "full graphlets" and "equations" (the
	// last also in between, per node batch). fracPercent is in [0,100].
	Progress func(stage string, fracPercent int)
}

func (s *Session) report(stage string, pct int) {
	if s.Progress != nil {
		s.Progress(stage, pct)
	}
}

// Count computes the 73-wide graphlet degree vector of every node of g.
func (s *Session) Count(g *graph.Graph) ([][73]uint64, error) {
	s.report("common nodes", 0)
	t := precomputeCommonNodes(g)
	s.report("common nodes", 100)

	s.report("triangles", 0)
	tri := triangleCounts(g)
	s.report("triangles", 100)

	s.report("full graphlets", 0)
	c5 := countFullCliques5(g)
	s.report("full graphlets", 100)

	rows := make([][73]int64, g.N)
	sc := newScratch(g.N)

	for x := 0; x < g.N; x++ {
		if g.N > 0 && x%stageReportGranularity(g.N) == 0 {
			s.report("equations", 100*x/g.N)
		}
		orbits, f := enumerateNode(g, t, tri, x, sc)
		orbits[72] = int64(c5[x])
		solveNode(&orbits, f)
		rows[x] = orbits
	}
	s.report("equations", 100)

	out := make([][73]uint64, g.N)
	for x, row := range rows {
		for j, v := range row {
			if v < 0 {
				orcaerr.Invariant(opCount, orcaerr.ErrNegativeOrbit, "node %d orbit %d = %d", x, j, v)
			}
			out[x][j] = uint64(v)
		}
	}
	return out, nil
}

// stageReportGranularity avoids a division by a very large n producing
// pointless sub-percent-point Progress calls; it caps the per-node reporting
// to at most 100 calls per stage, matching the reference implementation's
// 1%-steps.
func stageReportGranularity(n int) int {
	g := (n + 99) / 100
	if g < 1 {
		g = 1
	}
	return g
}
