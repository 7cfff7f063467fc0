package orbit

import "github.com/Becheler/orca/orcaerr"

// Count's only failure modes are internal-assertion panics recovered by
// cmd/orca, not returned errors; these are re-exported for tests and
// callers that want to assert on the sentinel without importing orcaerr.
var (
	ErrNonExactDivision = orcaerr.ErrNonExactDivision
	ErrNegativeOrbit    = orcaerr.ErrNegativeOrbit
)
