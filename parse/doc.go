// Package parse reads the ORCA edge-list text format described by
// spec.md §4.8 and produces a graph.Graph ready for orbit counting.
//
// Format: a header line "n m" giving the node count and declared edge
// count, followed by exactly m lines "a b" naming an undirected edge
// between node ids in [0,n). Fields are whitespace delimited; blank
// lines and extra whitespace are tolerated between tokens.
//
// Parse builds the ingestion graph with core.Graph, which already
// rejects self-loops (when WithLoops isn't set) and duplicate edges,
// then validates node-id range and the declared-vs-actual edge count
// before converting to the engine's compact graph.Graph via
// graph.FromCore.
package parse
