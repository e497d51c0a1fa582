package words

import (
	"strconv"
	"strings"

	"github.com/jhamby/sharray/lang/array"
)

// Assignment renders a in the compound assignment syntax that re-parses to
// an equivalent array:
//
//	([0]="a" [3]="d")
//
// Each value is quoted with quote, and the whole result with whole (e.g. a
// single-quoting function for declare-style output).
func Assignment(a *array.Array, quote, whole QuoteFunc) string {
	var sb strings.Builder
	sb.WriteByte('(')
	var n int
	a.Walk(func(e array.Element) bool {
		if n > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatInt(e.Index, 10))
		sb.WriteString("]=")
		sb.WriteString(quote.apply(e.Value))
		n++
		return true
	})
	sb.WriteByte(')')
	return whole.apply(sb.String())
}

// KeyValuePairs renders a as a space-separated sequence of index and value
// pairs:
//
//	0 "a" 3 "d"
//
// Each value is quoted with quote, and the whole result with whole.
func KeyValuePairs(a *array.Array, quote, whole QuoteFunc) string {
	var sb strings.Builder
	a.Walk(func(e array.Element) bool {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(e.Index, 10))
		sb.WriteByte(' ')
		sb.WriteString(quote.apply(e.Value))
		return true
	})
	return whole.apply(sb.String())
}

// Subrange collects up to count values of a, starting at the first element
// with an index greater than or equal to start. Absent indices are skipped
// and do not count. The values are combined with join.
func Subrange(a *array.Array, start, count int64, join JoinFunc) string {
	var vals []string
	if count > 0 {
		vals = make([]string, 0, min(count, int64(a.Len())))
		a.WalkFrom(start, func(e array.Element) bool {
			vals = append(vals, e.Value)
			return int64(len(vals)) < count
		})
	}
	return join(vals)
}

// MapValues applies fn to each value of a in ascending index order and
// combines the results with join. The array a is not modified.
func MapValues(a *array.Array, fn TransformFunc, join JoinFunc) string {
	vals := make([]string, 0, a.Len())
	a.Walk(func(e array.Element) bool {
		vals = append(vals, fn(e.Value))
		return true
	})
	return join(vals)
}
