package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinkedWith(t *testing.T, idx ...int64) *LinkedStrategy {
	t.Helper()
	l := NewLinked()
	for _, i := range idx {
		l.Insert(i, "")
	}
	require.NoError(t, l.checkInvariants())
	return l
}

func TestLinkedFastPaths(t *testing.T) {
	l := NewLinked()
	l.Insert(10, "ten")
	require.NotNil(t, l.cursor)
	assert.Equal(t, int64(10), l.cursor.ind)

	// append at the tail
	l.Insert(20, "twenty")
	assert.Same(t, l.head.prev, l.cursor)
	assert.Equal(t, int64(20), l.maxIndex)

	// prepend at the head
	l.Insert(5, "five")
	assert.Same(t, l.head.next, l.cursor)
	assert.Equal(t, int64(5), l.MinIndex())
	require.NoError(t, l.checkInvariants())
}

func TestLinkedOverwriteKeepsNode(t *testing.T) {
	l := newLinkedWith(t, 1, 2, 3)
	n, _ := l.find(2)
	require.NotNil(t, n)

	l.Insert(2, "two")
	m, _ := l.find(2)
	assert.Same(t, n, m)
	assert.Equal(t, "two", m.val)
	assert.Equal(t, 3, l.Len())
}

func TestLinkedCursorSearch(t *testing.T) {
	l := newLinkedWith(t, 0, 10, 20, 30, 40)

	// forward from the cursor
	l.cursor, _ = l.find(20)
	start, fwd := l.searchStart(25)
	assert.Equal(t, int64(20), start.ind)
	assert.True(t, fwd)

	// backward from the cursor
	start, fwd = l.searchStart(15)
	assert.Equal(t, int64(20), start.ind)
	assert.False(t, fwd)

	// less than half the cursor index, restart from the head
	start, fwd = l.searchStart(9)
	assert.Same(t, l.head.next, start)
	assert.True(t, fwd)

	// general path inserts in between, in both directions
	l.Insert(25, "a")
	assert.Equal(t, int64(25), l.cursor.ind)
	l.Insert(22, "b")
	assert.Equal(t, int64(22), l.cursor.ind)
	l.Insert(3, "c")
	assert.Equal(t, int64(3), l.cursor.ind)
	require.NoError(t, l.checkInvariants())

	var got []int64
	l.Walk(0, func(e Element) bool {
		got = append(got, e.Index)
		return true
	})
	assert.Equal(t, []int64{0, 3, 10, 20, 22, 25, 30, 40}, got)
}

func TestLinkedReferenceMissMovesCursor(t *testing.T) {
	l := newLinkedWith(t, 0, 10, 20, 30)

	// forward overshoot stops on the successor of the target position
	l.cursor, _ = l.find(10)
	_, ok := l.Reference(15)
	assert.False(t, ok)
	require.NotNil(t, l.cursor)
	assert.Equal(t, int64(20), l.cursor.ind)

	// backward overshoot stops on the predecessor of the target position
	l.cursor, _ = l.find(30)
	_, ok = l.Reference(25)
	assert.False(t, ok)
	require.NotNil(t, l.cursor)
	assert.Equal(t, int64(20), l.cursor.ind)

	// the subsequent insert starts next to the target
	l.Insert(25, "x")
	assert.Equal(t, int64(25), l.cursor.ind)
	require.NoError(t, l.checkInvariants())
}

// TestLinkedOvershootBoundary covers the exact stopping point of the
// directional scan: targets adjacent to present indices, in both directions,
// must be reported as not found without skipping the element that follows.
func TestLinkedOvershootBoundary(t *testing.T) {
	cases := []struct {
		cursor int64
		target int64
		found  bool
	}{
		{cursor: 10, target: 11, found: true},
		{cursor: 10, target: 12, found: false},
		{cursor: 10, target: 13, found: true},
		{cursor: 13, target: 12, found: false},
		{cursor: 13, target: 11, found: true},
		{cursor: 13, target: 10, found: true},
		{cursor: 11, target: 11, found: true},
		{cursor: 10, target: 14, found: false},
		{cursor: 13, target: 9, found: false},
	}
	for _, c := range cases {
		l := newLinkedWith(t, 10, 11, 13)
		l.cursor, _ = l.find(c.cursor)
		require.NotNil(t, l.cursor)

		_, ok := l.Reference(c.target)
		assert.Equal(t, c.found, ok, "reference %d from %d", c.target, c.cursor)
		if c.found {
			assert.Equal(t, c.target, l.cursor.ind)
		}

		l.cursor, _ = l.find(c.cursor)
		_, ok = l.Remove(c.target)
		assert.Equal(t, c.found, ok, "remove %d from %d", c.target, c.cursor)
		assert.NoError(t, l.checkInvariants())
	}
}

func TestLinkedRemoveCursor(t *testing.T) {
	l := newLinkedWith(t, 1, 2, 3)

	// the cursor moves to the successor
	_, ok := l.Remove(2)
	require.True(t, ok)
	assert.Equal(t, int64(3), l.cursor.ind)

	// to the predecessor when the removed node was the last one
	_, ok = l.Remove(3)
	require.True(t, ok)
	assert.Equal(t, int64(1), l.cursor.ind)
	assert.Equal(t, int64(1), l.maxIndex)

	// and is cleared when the list becomes empty
	_, ok = l.Remove(1)
	require.True(t, ok)
	assert.Nil(t, l.cursor)
	assert.Equal(t, int64(-1), l.maxIndex)
	require.NoError(t, l.checkInvariants())
}

func TestLinkedShiftClearsCursor(t *testing.T) {
	l := newLinkedWith(t, 1, 2, 3)
	require.NotNil(t, l.cursor)
	l.ShiftRight(2)
	assert.Nil(t, l.cursor)

	l.Reference(4)
	require.NotNil(t, l.cursor)
	l.ShiftLeft(1, true)
	assert.Nil(t, l.cursor)
	require.NoError(t, l.checkInvariants())
}

func TestLinkedCorruptOrderPanics(t *testing.T) {
	l := newLinkedWith(t, 1, 5, 9)
	// bookkeeping claims a higher index than any node
	l.maxIndex = 100

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*InvariantError)
		require.True(t, ok, "%T", r)
		assert.Equal(t, "insert", err.Op)
		assert.Equal(t, int64(50), err.Index)
		assert.Contains(t, err.Error(), "linked array: insert 50")
		assert.Nil(t, l.cursor)
	}()
	l.Insert(50, "x")
}
