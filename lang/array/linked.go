package array

// node is an element of the Linked ring. The sentinel node has an index of
// -1 and no value.
type node struct {
	ind  int64
	val  string
	next *node
	prev *node
}

// LinkedStrategy is a Strategy that stores elements in a circular,
// sentinel-headed, doubly linked list in ascending index order. It keeps a
// cursor on the most recently accessed node so that sequential and
// near-sequential access patterns do not need to scan the list from the
// start.
//
// Appending past the highest index and prepending before the lowest index
// are O(1). Other operations are bounded by the distance between the cursor
// (or the head) and the target index.
type LinkedStrategy struct {
	head     *node // sentinel
	count    int
	maxIndex int64
	cursor   *node // most recently touched node, nil if unset
}

var _ Strategy = (*LinkedStrategy)(nil)

// NewLinked returns an empty LinkedStrategy.
func NewLinked() *LinkedStrategy {
	l := &LinkedStrategy{maxIndex: -1}
	l.head = &node{ind: -1}
	l.head.next, l.head.prev = l.head, l.head
	return l
}

func addBefore(at, n *node) {
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
}

func addAfter(at, n *node) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
}

func unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
}

func (l *LinkedStrategy) Kind() Kind      { return Linked }
func (l *LinkedStrategy) Len() int        { return l.count }
func (l *LinkedStrategy) MaxIndex() int64 { return l.maxIndex }

func (l *LinkedStrategy) MinIndex() int64 {
	if l.count == 0 {
		return -1
	}
	return l.head.next.ind
}

// searchStart returns the node where a search for index i should start and
// whether the search moves forward. The list must not be empty.
func (l *LinkedStrategy) searchStart(i int64) (start *node, forward bool) {
	start = l.cursor
	if start == nil {
		start = l.head.next
	}
	// the cursor is far past the target, it is cheaper to come from the head
	if i < start.ind/2 {
		return l.head.next, true
	}
	return start, i >= start.ind
}

// find searches for the node with index i. If there is no such node, it
// returns nil and the node at which the search stopped, which is the nearest
// node in the search direction (it is never the sentinel).
func (l *LinkedStrategy) find(i int64) (found, near *node) {
	n, fwd := l.searchStart(i)
	for {
		if n.ind == i {
			return n, n
		}

		next := n.prev
		if fwd {
			next = n.next
		}
		if next == l.head {
			return nil, n
		}
		if (fwd && next.ind > i) || (!fwd && next.ind < i) {
			// overshot the target, stop as not found
			return nil, next
		}
		n = next
	}
}

func (l *LinkedStrategy) Insert(i int64, v string) {
	if i > l.maxIndex {
		n := &node{ind: i, val: v}
		addBefore(l.head, n)
		l.maxIndex = i
		l.count++
		l.cursor = n
		return
	}
	if i < l.head.next.ind {
		n := &node{ind: i, val: v}
		addAfter(l.head, n)
		l.count++
		l.cursor = n
		return
	}

	start, fwd := l.searchStart(i)
	for n := start; n != l.head; {
		switch {
		case n.ind == i:
			n.val = v
			l.cursor = n
			return

		case fwd && n.ind > i:
			nn := &node{ind: i, val: v}
			addBefore(n, nn)
			l.count++
			l.cursor = nn
			return

		case !fwd && n.ind < i:
			nn := &node{ind: i, val: v}
			addAfter(n, nn)
			l.count++
			l.cursor = nn
			return
		}

		if fwd {
			n = n.next
		} else {
			n = n.prev
		}
	}

	l.cursor = nil
	panic(&InvariantError{Kind: Linked, Op: "insert", Index: i, Msg: "no splice point in ordered list"})
}

func (l *LinkedStrategy) Remove(i int64) (string, bool) {
	if l.count == 0 || i > l.maxIndex || i < l.head.next.ind {
		return "", false
	}

	n, near := l.find(i)
	if n == nil {
		l.cursor = near
		return "", false
	}

	prev, next := n.prev, n.next
	unlink(n)
	l.count--
	if i == l.maxIndex {
		// prev is the sentinel if n was the only node, which sets -1
		l.maxIndex = prev.ind
	}

	switch {
	case next != l.head:
		l.cursor = next
	case prev != l.head:
		l.cursor = prev
	default:
		l.cursor = nil
	}
	return n.val, true
}

func (l *LinkedStrategy) Reference(i int64) (string, bool) {
	if l.count == 0 || i > l.maxIndex || i < l.head.next.ind {
		return "", false
	}

	n, near := l.find(i)
	// a failed lookup is often followed by an insert near that position
	l.cursor = near
	if n == nil {
		return "", false
	}
	return n.val, true
}

func (l *LinkedStrategy) Flush() {
	l.head.next, l.head.prev = l.head, l.head
	l.count = 0
	l.maxIndex = -1
	l.cursor = nil
}

func (l *LinkedStrategy) Clone() Strategy {
	dst := NewLinked()
	for n := l.head.next; n != l.head; n = n.next {
		addBefore(dst.head, &node{ind: n.ind, val: n.val})
	}
	dst.count = l.count
	dst.maxIndex = l.maxIndex
	return dst
}

func (l *LinkedStrategy) Slice(start, end int64) Strategy {
	dst := NewLinked()
	l.Walk(start, func(e Element) bool {
		if e.Index >= end {
			return false
		}
		// elements are visited in order, always an append
		dst.Insert(e.Index, e.Value)
		return true
	})
	dst.cursor = nil
	return dst
}

func (l *LinkedStrategy) ShiftLeft(n int64, dispose bool) []Element {
	l.cursor = nil

	var removed []Element
	if int64(l.count) <= n {
		if !dispose {
			removed = l.elements()
		}
		l.Flush()
		return removed
	}

	if !dispose {
		removed = make([]Element, 0, n)
	}
	keep := l.head.next
	for k := int64(0); k < n; k++ {
		if !dispose {
			removed = append(removed, Element{Index: keep.ind, Value: keep.val})
		}
		keep = keep.next
	}

	// detach the shifted nodes in one step
	l.head.next = keep
	keep.prev = l.head
	for nd := keep; nd != l.head; nd = nd.next {
		nd.ind -= n
	}
	l.count -= int(n)
	l.maxIndex = l.head.prev.ind
	return removed
}

func (l *LinkedStrategy) ShiftRight(n int64) {
	l.cursor = nil
	for nd := l.head.next; nd != l.head; nd = nd.next {
		nd.ind += n
	}
	if l.count > 0 {
		l.maxIndex = l.head.prev.ind
	}
}

func (l *LinkedStrategy) Walk(start int64, fn func(Element) bool) {
	n := l.head.next
	if c := l.cursor; c != nil && c.ind <= start {
		n = c
	}
	for n != l.head && n.ind < start {
		n = n.next
	}
	if n != l.head {
		l.cursor = n
	}
	for ; n != l.head; n = n.next {
		if !fn(Element{Index: n.ind, Value: n.val}) {
			return
		}
	}
}

func (l *LinkedStrategy) elements() []Element {
	elems := make([]Element, 0, l.count)
	for n := l.head.next; n != l.head; n = n.next {
		elems = append(elems, Element{Index: n.ind, Value: n.val})
	}
	return elems
}

// checkInvariants verifies the ring ordering and bookkeeping, it is used by
// tests.
func (l *LinkedStrategy) checkInvariants() error {
	var (
		count int
		prev  = l.head
	)
	for n := l.head.next; n != l.head; n = n.next {
		if n.prev != prev {
			return &InvariantError{Kind: Linked, Op: "check", Index: n.ind, Msg: "broken backward link"}
		}
		if prev != l.head && prev.ind >= n.ind {
			return &InvariantError{Kind: Linked, Op: "check", Index: n.ind, Msg: "indices not in ascending order"}
		}
		count++
		prev = n
	}
	if count != l.count {
		return &InvariantError{Kind: Linked, Op: "check", Index: int64(count), Msg: "element count mismatch"}
	}
	if l.maxIndex != l.head.prev.ind {
		return &InvariantError{Kind: Linked, Op: "check", Index: l.maxIndex, Msg: "max index mismatch"}
	}
	if c := l.cursor; c != nil && (c.next == nil || c.prev == nil) {
		return &InvariantError{Kind: Linked, Op: "check", Index: c.ind, Msg: "cursor on a detached node"}
	}
	return nil
}
