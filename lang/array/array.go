package array

import (
	"math"
	"strings"
)

// An Array is a sparse, integer-indexed, ordered collection of string values,
// as used to back shell array variables. Indices are non-negative; most
// integer positions between the lowest and highest index may be unoccupied.
//
// The zero value is not usable, create arrays with New or NewWith. An Array
// is not safe for concurrent use.
type Array struct {
	s Strategy
}

// An IndexLimiter is implemented by strategies that cannot hold elements past
// a given index.
type IndexLimiter interface {
	IndexLimit() int64
}

// New returns an empty array backed by the strategy of the specified kind,
// using the default configuration.
func New(kind Kind) *Array {
	switch kind {
	case Dense:
		return NewWith(NewDense(DenseConfig{}))
	default:
		return NewWith(NewLinked())
	}
}

// NewWith returns an array backed by the provided strategy. The array takes
// ownership of s.
func NewWith(s Strategy) *Array {
	return &Array{s: s}
}

// Kind returns the kind of strategy backing the array.
func (a *Array) Kind() Kind { return a.s.Kind() }

// Strategy returns the strategy backing the array.
func (a *Array) Strategy() Strategy { return a.s }

// IndexLimit returns the highest index the array can hold.
func (a *Array) IndexLimit() int64 {
	if l, ok := a.s.(IndexLimiter); ok {
		return l.IndexLimit()
	}
	return math.MaxInt64
}

// Len returns the number of elements in the array.
func (a *Array) Len() int { return a.s.Len() }

// IsEmpty returns true if the array has no element.
func (a *Array) IsEmpty() bool { return a.s.Len() == 0 }

// MaxIndex returns the highest index in the array, or -1 if it is empty.
func (a *Array) MaxIndex() int64 { return a.s.MaxIndex() }

// MinIndex returns the lowest index in the array, or -1 if it is empty.
func (a *Array) MinIndex() int64 { return a.s.MinIndex() }

// Insert sets the value at index i. If an element already exists at i, its
// value is replaced. It returns ErrIndexRange if i is negative or past the
// index limit.
func (a *Array) Insert(i int64, v string) error {
	if i < 0 || i > a.IndexLimit() {
		return ErrIndexRange
	}
	a.s.Insert(i, v)
	return nil
}

// Remove removes the element at index i and returns its value. It returns
// false if there is no such element, which is not an error.
func (a *Array) Remove(i int64) (string, bool) {
	if i < 0 || i > a.s.MaxIndex() {
		return "", false
	}
	return a.s.Remove(i)
}

// Reference returns the value at index i, or false if there is no such
// element.
func (a *Array) Reference(i int64) (string, bool) {
	if i < 0 || i > a.s.MaxIndex() {
		return "", false
	}
	return a.s.Reference(i)
}

// Flush removes all elements from the array.
func (a *Array) Flush() { a.s.Flush() }

// Copy returns a deep copy of the array, using the same strategy. The copy
// shares nothing with a.
func (a *Array) Copy() *Array { return NewWith(a.s.Clone()) }

// Slice returns a new array holding a copy of every element with an index
// in [start, end). Indices are preserved, not renumbered. The array a is not
// modified.
func (a *Array) Slice(start, end int64) *Array {
	if start < 0 {
		start = 0
	}
	return NewWith(a.s.Slice(start, end))
}

// ShiftLeft removes the first n elements in ascending index order and
// renumbers the remaining ones by subtracting n from their index. If dispose
// is false, the removed elements are returned in ascending index order.
func (a *Array) ShiftLeft(n int64, dispose bool) ([]Element, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 || a.s.Len() == 0 {
		return nil, nil
	}
	return a.s.ShiftLeft(n, dispose), nil
}

// ShiftRight adds n to the index of every element and returns the number of
// elements. It returns ErrOverflow if the highest index would move past the
// index limit.
func (a *Array) ShiftRight(n int64) (int, error) {
	if err := a.checkShiftRight(n); err != nil {
		return 0, err
	}
	if n > 0 && a.s.Len() > 0 {
		a.s.ShiftRight(n)
	}
	return a.s.Len(), nil
}

// ShiftRightWith is like ShiftRight but it inserts v at index 0 after the
// shift. If n is 0, the array is left unchanged and v is not inserted.
func (a *Array) ShiftRightWith(n int64, v string) (int, error) {
	if err := a.checkShiftRight(n); err != nil {
		return 0, err
	}
	if n == 0 {
		return a.s.Len(), nil
	}
	if a.s.Len() > 0 {
		a.s.ShiftRight(n)
	}
	a.s.Insert(0, v)
	return a.s.Len(), nil
}

func (a *Array) checkShiftRight(n int64) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if hi := a.s.MaxIndex(); hi >= 0 && n > a.IndexLimit()-hi {
		return ErrOverflow
	}
	return nil
}

// Push appends v after the highest index of the array. It returns
// ErrOverflow if the highest index is already at the index limit.
func (a *Array) Push(v string) error {
	hi := a.s.MaxIndex()
	if hi >= a.IndexLimit() {
		return ErrOverflow
	}
	a.s.Insert(hi+1, v)
	return nil
}

// Pop removes the element at the highest index and returns it. It returns
// false if the array is empty.
func (a *Array) Pop() (Element, bool) {
	hi := a.s.MaxIndex()
	if hi < 0 {
		return Element{}, false
	}
	v, _ := a.s.Remove(hi)
	return Element{Index: hi, Value: v}, true
}

// Walk calls fn for each element in ascending index order, until fn returns
// false. The array must not be modified during the walk.
func (a *Array) Walk(fn func(Element) bool) {
	a.s.Walk(0, fn)
}

// WalkFrom is like Walk but it starts at the first element with an index
// greater than or equal to start.
func (a *Array) WalkFrom(start int64, fn func(Element) bool) {
	if start < 0 {
		start = 0
	}
	if start > a.s.MaxIndex() {
		return
	}
	a.s.Walk(start, fn)
}

// Elements returns the elements of the array in ascending index order.
func (a *Array) Elements() []Element {
	elems := make([]Element, 0, a.s.Len())
	a.s.Walk(0, func(e Element) bool {
		elems = append(elems, e)
		return true
	})
	return elems
}

// String returns a debug representation of the array.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString(a.s.Kind().String())
	sb.WriteString("(")
	var n int
	a.s.Walk(0, func(e Element) bool {
		if n > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
		n++
		return true
	})
	sb.WriteString(")")
	return sb.String()
}
