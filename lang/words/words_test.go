package words_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/jhamby/sharray/lang/array"
	"github.com/jhamby/sharray/lang/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []array.Kind{array.Linked, array.Dense}

func sparse(t *testing.T, kind array.Kind) *array.Array {
	t.Helper()
	a := array.New(kind)
	require.NoError(t, a.Insert(1, "one"))
	require.NoError(t, a.Insert(7, "seven"))
	require.NoError(t, a.Insert(4, "four"))
	require.NoError(t, a.Insert(9, ""))
	return a
}

func dquote(s string) string { return strconv.Quote(s) }
func squote(s string) string { return "'" + s + "'" }
func space(vals []string) string { return strings.Join(vals, " ") }

func TestSequences(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := sparse(t, kind)
			assert.Equal(t, words.List{"one", "four", "seven", ""}, words.Values(a))
			assert.Equal(t, words.List{"1", "4", "7", "9"}, words.Indices(a))
			assert.Equal(t, words.List{"1", "one", "4", "four", "7", "seven", "9", ""}, words.KeyValues(a))
			assert.Equal(t, []string{"one", "four", "seven"}, words.Argv(a))
			assert.Equal(t, "one,four,seven,", words.Join(a, ","))

			e := array.New(kind)
			assert.Empty(t, words.Values(e))
			assert.Empty(t, words.Indices(e))
			assert.Empty(t, words.Argv(e))
		})
	}
}

func TestFromList(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a, err := words.FromList(kind, words.List{"a", "b", "c"})
			require.NoError(t, err)
			assert.Equal(t, kind, a.Kind())
			assert.Equal(t, words.List{"0", "1", "2"}, words.Indices(a))
			assert.Equal(t, words.List{"a", "b", "c"}, words.Values(a))

			// assigning keeps elements past the list
			require.NoError(t, a.Insert(10, "k"))
			require.NoError(t, words.AssignList(a, words.List{"x", "y"}))
			assert.Equal(t, words.List{"x", "y", "c", "k"}, words.Values(a))
		})
	}
}

func TestAssignListPastLimit(t *testing.T) {
	a := array.NewWith(array.NewDense(array.DenseConfig{MaxIndex: 1}))
	err := words.AssignList(a, words.List{"a", "b", "c"})
	require.ErrorIs(t, err, array.ErrIndexRange)
	assert.Equal(t, words.List{"a", "b"}, words.Values(a))

	err = words.Split(a, "x,y,z", ",")
	require.ErrorIs(t, err, array.ErrIndexRange)
	assert.Equal(t, words.List{"x", "y"}, words.Values(a))
}

func TestSplit(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := sparse(t, kind)
			require.NoError(t, words.Split(a, "a:b::c", ":"))
			assert.Equal(t, words.List{"a", "b", "", "c"}, words.Values(a))
			assert.Equal(t, int64(3), a.MaxIndex())

			require.NoError(t, words.Split(a, "a:b", ""))
			assert.Equal(t, words.List{"a:b"}, words.Values(a))
		})
	}
}

func TestAssignment(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := sparse(t, kind)
			assert.Equal(t, `([1]="one" [4]="four" [7]="seven" [9]="")`, words.Assignment(a, dquote, nil))
			assert.Equal(t, `'([1]=one [4]=four [7]=seven [9]=)'`, words.Assignment(a, nil, squote))
			assert.Equal(t, `1 "one" 4 "four" 7 "seven" 9 ""`, words.KeyValuePairs(a, dquote, nil))
			assert.Equal(t, `'1 one 4 four 7 seven 9 '`, words.KeyValuePairs(a, nil, squote))

			e := array.New(kind)
			assert.Equal(t, "()", words.Assignment(e, dquote, nil))
			assert.Equal(t, "", words.KeyValuePairs(e, dquote, nil))
		})
	}
}

func TestSubrange(t *testing.T) {
	cases := []struct {
		start, count int64
		want         string
	}{
		{0, 2, "one four"},
		{1, 2, "one four"},
		{2, 2, "four seven"},
		{5, 10, "seven "},
		{4, 1, "four"},
		{8, 1, ""},
		{10, 3, ""},
		{0, 0, ""},
		{-4, 1, "one"},
	}
	for _, kind := range kinds {
		a := sparse(t, kind)
		for _, c := range cases {
			var calls int
			got := words.Subrange(a, c.start, c.count, func(vals []string) string {
				calls++
				return space(vals)
			})
			assert.Equal(t, c.want, got, "%s: start=%d count=%d", kind, c.start, c.count)
			assert.Equal(t, 1, calls)
		}
	}
}

func TestMapValues(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := sparse(t, kind)
			before := a.Elements()

			got := words.MapValues(a, strings.ToUpper, space)
			assert.Equal(t, "ONE FOUR SEVEN ", got)
			got = words.MapValues(a, func(s string) string {
				return strings.ReplaceAll(s, "e", "E")
			}, func(vals []string) string { return strings.Join(vals, "|") })
			assert.Equal(t, "onE|four|sEvEn|", got)

			assert.Equal(t, before, a.Elements())
		})
	}
}
