package array

import "fmt"

// ConstError is an error type used to define immutable error constants.
type ConstError string

func (e ConstError) Error() string { return string(e) }

const (
	// ErrIndexRange is returned when inserting at a negative index or past the
	// index limit of the strategy.
	ErrIndexRange = ConstError("array index out of range")

	// ErrOverflow is returned when an operation would move an index past the
	// largest representable index.
	ErrOverflow = ConstError("array index overflow")

	// ErrNegativeCount is returned when a shift count is negative.
	ErrNegativeCount = ConstError("negative shift count")
)

// An InvariantError reports a corrupted internal invariant of a strategy. It
// is never caused by caller input and is raised as a panic value, as
// continuing would silently corrupt all subsequent operations.
type InvariantError struct {
	Kind  Kind
	Op    string
	Index int64
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s array: %s %d: invariant violated: %s", e.Kind, e.Op, e.Index, e.Msg)
}
