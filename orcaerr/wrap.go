package orcaerr

import "fmt"

// Wrapf attaches op context to err, in the same "<Op>: <message>: %w" shape
// used by the builder package's builderErrorf, preserving errors.Is/As for
// the wrapped sentinel.
func Wrapf(op string, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", op, msg, err)
}

// Invariant panics with an *InvariantError wrapping sentinel. It is the
// single guarded path by which the core packages may abort on a broken
// assertion; cmd/orca recovers it exactly once at the top of run().
func Invariant(op string, sentinel error, format string, args ...interface{}) {
	panic(&InvariantError{Op: op, Err: Wrapf(op, format, sentinel, args...)})
}

// InvariantError is the payload recovered by cmd/orca when an Invariant
// panic escapes the orbit-counting session. It is never expected to
// surface from a correct engine on well-formed graphs.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string { return e.Err.Error() }
func (e *InvariantError) Unwrap() error { return e.Err }
