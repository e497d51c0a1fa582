// Package words converts arrays to and from the ordered sequences of strings
// exchanged with the expansion and assignment layers of the shell, and
// renders arrays as text.
//
// Quoting, joining and value transformations are supplied by the caller and
// treated as opaque functions; this package never implements quoting rules
// itself.
package words

import (
	"strconv"
	"strings"

	"github.com/jhamby/sharray/lang/array"
)

// A List is an ordered sequence of strings, the common currency of values
// exchanged with the rest of the interpreter.
type List []string

// QuoteFunc quotes a single value. A nil QuoteFunc leaves values unchanged.
type QuoteFunc func(string) string

// TransformFunc transforms a single value, e.g. a pattern substitution or a
// case conversion.
type TransformFunc func(string) string

// JoinFunc combines an ordered sequence of values into a single result.
type JoinFunc func([]string) string

func (q QuoteFunc) apply(s string) string {
	if q == nil {
		return s
	}
	return q(s)
}

// Values returns the values of a in ascending index order.
func Values(a *array.Array) List {
	l := make(List, 0, a.Len())
	a.Walk(func(e array.Element) bool {
		l = append(l, e.Value)
		return true
	})
	return l
}

// Indices returns the indices of a in ascending order, as decimal strings.
func Indices(a *array.Array) List {
	l := make(List, 0, a.Len())
	a.Walk(func(e array.Element) bool {
		l = append(l, strconv.FormatInt(e.Index, 10))
		return true
	})
	return l
}

// KeyValues returns the indices and values of a interleaved, in ascending
// index order.
func KeyValues(a *array.Array) List {
	l := make(List, 0, 2*a.Len())
	a.Walk(func(e array.Element) bool {
		l = append(l, strconv.FormatInt(e.Index, 10), e.Value)
		return true
	})
	return l
}

// FromList returns a new array of the specified kind holding the values of l
// at indices 0 to len(l)-1.
func FromList(kind array.Kind, l List) (*array.Array, error) {
	a := array.New(kind)
	if err := AssignList(a, l); err != nil {
		return nil, err
	}
	return a, nil
}

// AssignList inserts the values of l in a at indices 0 to len(l)-1,
// replacing existing values at those indices. Other elements of a are left
// untouched.
func AssignList(a *array.Array, l List) error {
	for i, v := range l {
		if err := a.Insert(int64(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Argv returns the values of a in ascending index order, skipping empty
// values, in a form suitable for process invocation arguments.
func Argv(a *array.Array) []string {
	argv := make([]string, 0, a.Len())
	a.Walk(func(e array.Element) bool {
		if e.Value != "" {
			argv = append(argv, e.Value)
		}
		return true
	})
	return argv
}

// Join returns the values of a in ascending index order, separated by sep.
func Join(a *array.Array, sep string) string {
	return strings.Join(Values(a), sep)
}

// Split flushes a and assigns it the fields of s separated by sep, at
// indices starting at 0. If sep is empty, s is assigned as a single element.
func Split(a *array.Array, s, sep string) error {
	a.Flush()
	if sep == "" {
		return a.Insert(0, s)
	}
	return AssignList(a, strings.Split(s, sep))
}
