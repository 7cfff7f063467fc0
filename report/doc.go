// Package report formats the final orbit matrix as the text output
// described by spec.md §4.8: one line per node, 73 space-separated
// decimal integers per line, node order 0..n-1, trailing newline after
// the last line.
package report
