package array

import "strconv"

// An Element is the atomic unit of storage of an array: a value stored at an
// index. Within one array, indices are unique.
type Element struct {
	Index int64
	Value string
}

func (e Element) String() string {
	return "[" + strconv.FormatInt(e.Index, 10) + "]=" + e.Value
}
