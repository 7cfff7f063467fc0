// Package orcaerr defines the sentinel error taxonomy shared by every
// package in the ORCA module: parse, graph, orbit, report and cmd/orca.
//
// Error policy (mirrors the core package's convention):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Call sites attach context with Wrapf, which preserves errors.Is/As.
//
// Three kinds are distinguished, matching spec.md §7:
//
//	ParseError         – malformed input; fatal at the parse boundary.
//	IoError            – cannot open input / write output.
//	InvariantViolation – a core assertion fired; this is a bug, not a
//	                     user error, and always aborts the run.
package orcaerr

import "errors"

// Kind classifies an error into one of the three families of spec.md §7.
type Kind int

const (
	// KindUnknown is returned by Classify for errors outside this taxonomy.
	KindUnknown Kind = iota
	KindParse
	KindIO
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Parse errors: malformed header, malformed edge line, out-of-range ids,
// self-loops, duplicate undirected edges, edge count mismatch.
var (
	ErrMalformedHeader   = errors.New("orcaerr: malformed header")
	ErrMalformedEdge     = errors.New("orcaerr: malformed edge line")
	ErrNodeIDOutOfRange  = errors.New("orcaerr: node id out of range")
	ErrSelfLoop          = errors.New("orcaerr: self-loop not allowed")
	ErrDuplicateEdge     = errors.New("orcaerr: duplicate undirected edge")
	ErrEdgeCountMismatch = errors.New("orcaerr: edge count does not match declared m")
)

// IO errors: cannot open input, cannot write output.
var (
	ErrCannotOpenInput   = errors.New("orcaerr: cannot open input")
	ErrCannotWriteOutput = errors.New("orcaerr: cannot write output")
)

// Invariant violations: a core assertion fired. These indicate a bug in
// the engine, not a malformed input, and always abort the run.
var (
	ErrNonExactDivision  = errors.New("orcaerr: solver division was not exact")
	ErrNegativeOrbit     = errors.New("orcaerr: orbit count went negative")
	ErrDegreeSumMismatch = errors.New("orcaerr: sum(deg) != 2m")
)

var parseSet = []error{
	ErrMalformedHeader, ErrMalformedEdge, ErrNodeIDOutOfRange,
	ErrSelfLoop, ErrDuplicateEdge, ErrEdgeCountMismatch,
}

var ioSet = []error{ErrCannotOpenInput, ErrCannotWriteOutput}

var invariantSet = []error{
	ErrNonExactDivision, ErrNegativeOrbit, ErrDegreeSumMismatch,
}

// Classify maps err onto the Kind of sentinel it wraps, walking the chain
// with errors.Is. It returns KindUnknown if err matches none of them (or
// is nil).
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, sentinel := range parseSet {
		if errors.Is(err, sentinel) {
			return KindParse
		}
	}
	for _, sentinel := range ioSet {
		if errors.Is(err, sentinel) {
			return KindIO
		}
	}
	for _, sentinel := range invariantSet {
		if errors.Is(err, sentinel) {
			return KindInvariant
		}
	}
	return KindUnknown
}
