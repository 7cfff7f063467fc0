// Package gdvcheck independently re-derives two of the quantities the
// orbit package counts — induced paths on 3 nodes (P3) and triangles —
// using gonum's graph types instead of orbit's own bookkeeping. It backs
// the property tests of orbit/properties_test.go that cross-check
// invariant 4 (orbit totals against known combinatorial identities)
// without sharing code with the engine under test. It is test tooling,
// not a production code path.
package gdvcheck
