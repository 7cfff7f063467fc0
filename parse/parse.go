package parse

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/Becheler/orca/core"
	"github.com/Becheler/orca/graph"
	"github.com/Becheler/orca/orcaerr"
)

const opParse = "parse.Parse"

// Parse reads the graph text format of spec.md §4.8: a header line "n m",
// followed by exactly m edge lines "a b" (0<=a,b<n, a!=b), whitespace
// delimited. It builds vertices "0".."n-1" and adds each edge through
// core.Graph.AddEdge, which rejects duplicate undirected edges for free
// (see ErrDuplicateEdge below); self-loops and out-of-range ids are
// rejected before ever reaching AddEdge so the error classifies correctly.
// The ingestion graph is then converted to the engine's compact form via
// graph.FromCore.
//
// Validation mirrors original_source/include/parser.h's throw_if_* checks:
// out-of-range node ids, self-loops, and a declared-vs-actual edge count
// mismatch are all fatal.
func Parse(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	n, m, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, orcaerr.Wrapf(opParse, "AddVertex(%d)", err, i)
		}
	}

	edgeCount := 0
	for {
		a, ok, err := nextInt(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		b, ok, err := nextInt(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, orcaerr.Wrapf(opParse, "edge %d: missing second endpoint", orcaerr.ErrMalformedEdge, edgeCount)
		}

		if edgeCount >= m {
			return nil, orcaerr.Wrapf(opParse, "more edges present (>%d) than declared (%d)", orcaerr.ErrEdgeCountMismatch, edgeCount, m)
		}
		if err := validateNodeID(a, n); err != nil {
			return nil, err
		}
		if err := validateNodeID(b, n); err != nil {
			return nil, err
		}
		if a == b {
			return nil, orcaerr.Wrapf(opParse, "edge %d: node %d", orcaerr.ErrSelfLoop, edgeCount, a)
		}

		if _, err := g.AddEdge(strconv.Itoa(a), strconv.Itoa(b), 0); err != nil {
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, orcaerr.Wrapf(opParse, "edge %d: {%d,%d}", orcaerr.ErrDuplicateEdge, edgeCount, a, b)
			}
			return nil, orcaerr.Wrapf(opParse, "AddEdge(%d,%d)", err, a, b)
		}
		edgeCount++
	}

	if edgeCount != m {
		return nil, orcaerr.Wrapf(opParse, "declared %d edges, found %d", orcaerr.ErrEdgeCountMismatch, m, edgeCount)
	}

	cg, err := graph.FromCore(g)
	if err != nil {
		return nil, orcaerr.Wrapf(opParse, "converting parsed graph", err)
	}
	return cg, nil
}

func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	n, ok, err := nextInt(scanner)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, orcaerr.Wrapf(opParse, "empty input, expected \"n m\" header", orcaerr.ErrMalformedHeader)
	}
	m, ok, err = nextInt(scanner)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, orcaerr.Wrapf(opParse, "header missing edge count", orcaerr.ErrMalformedHeader)
	}
	if n < 0 || m < 0 {
		return 0, 0, orcaerr.Wrapf(opParse, "header has negative n=%d or m=%d", orcaerr.ErrMalformedHeader, n, m)
	}
	return n, m, nil
}

// nextInt scans the next whitespace-delimited token and parses it as an
// int. ok is false at clean EOF (no more tokens); err is non-nil for a
// token that isn't a valid integer.
func nextInt(scanner *bufio.Scanner) (v int, ok bool, err error) {
	if !scanner.Scan() {
		if scanErr := scanner.Err(); scanErr != nil {
			return 0, false, orcaerr.Wrapf(opParse, "reading input: %v", orcaerr.ErrMalformedHeader, scanErr)
		}
		return 0, false, nil
	}
	tok := scanner.Text()
	v, convErr := strconv.Atoi(strings.TrimSpace(tok))
	if convErr != nil {
		return 0, false, orcaerr.Wrapf(opParse, "token %q is not an integer", orcaerr.ErrMalformedEdge, tok)
	}
	return v, true, nil
}

func validateNodeID(id, n int) error {
	if id < 0 || id >= n {
		return orcaerr.Wrapf(opParse, "node id %d out of range [0,%d)", orcaerr.ErrNodeIDOutOfRange, id, n)
	}
	return nil
}
