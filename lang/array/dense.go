package array

import "math"

const (
	// DefaultInitialCapacity is the capacity of the first backing store
	// allocated by a DenseStrategy.
	DefaultInitialCapacity = 16

	// DefaultGrowthCeiling is the capacity up to which the backing store of a
	// DenseStrategy doubles in size. Past that point, it grows linearly by
	// that amount.
	DefaultGrowthCeiling = 4096

	// DefaultMaxIndex is the highest index a DenseStrategy accepts by default.
	DefaultMaxIndex = 1<<24 - 1
)

// DenseConfig configures the growth policy of a DenseStrategy. Zero values
// are replaced by the corresponding defaults.
type DenseConfig struct {
	InitialCapacity int64
	GrowthCeiling   int64

	// MaxIndex bounds the size of the backing store, Array rejects any
	// operation that would store an element past that index.
	MaxIndex int64
}

func (c DenseConfig) withDefaults() DenseConfig {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.GrowthCeiling <= 0 {
		c.GrowthCeiling = DefaultGrowthCeiling
	}
	if c.MaxIndex <= 0 {
		c.MaxIndex = DefaultMaxIndex
	}
	return c
}

// DenseStrategy is a Strategy that stores elements in a slice addressed
// directly by index: slot i holds the element at index i, or nil. Insert,
// Remove and Reference are O(1), except when the removed element is at one
// of the extremes of the array, in which case the new extreme is found by
// scanning inward. Shifting relocates the whole occupied range.
//
// The backing store is never smaller than MaxIndex()+1, so this strategy is
// a poor fit for very sparse arrays with large indices. It keeps no cursor,
// as every lookup is already a direct slot access.
type DenseStrategy struct {
	cfg      DenseConfig
	slots    []*Element
	count    int
	maxIndex int64
	minIndex int64
}

var (
	_ Strategy     = (*DenseStrategy)(nil)
	_ IndexLimiter = (*DenseStrategy)(nil)
)

// NewDense returns an empty DenseStrategy using the provided growth policy.
// No backing store is allocated until the first insertion.
func NewDense(cfg DenseConfig) *DenseStrategy {
	return &DenseStrategy{
		cfg:      cfg.withDefaults(),
		maxIndex: -1,
		minIndex: -1,
	}
}

func (d *DenseStrategy) Kind() Kind      { return Dense }
func (d *DenseStrategy) Len() int        { return d.count }
func (d *DenseStrategy) MaxIndex() int64 { return d.maxIndex }
func (d *DenseStrategy) MinIndex() int64 { return d.minIndex }

// Cap returns the capacity of the backing store.
func (d *DenseStrategy) Cap() int64 { return int64(len(d.slots)) }

// IndexLimit returns the highest index the strategy can hold.
func (d *DenseStrategy) IndexLimit() int64 { return d.cfg.MaxIndex }

// capacityFor returns the capacity of the backing store required to hold
// index i: the current capacity (or the initial one) doubled until it
// reaches the growth ceiling, then increased linearly by the ceiling. It
// never exceeds the index limit plus one, unless i itself requires it.
func (d *DenseStrategy) capacityFor(i int64) int64 {
	ceiling := d.cfg.GrowthCeiling
	size := int64(len(d.slots))
	if size == 0 {
		size = d.cfg.InitialCapacity
	}
	for i >= size && size < ceiling {
		if size > ceiling/2 {
			size = ceiling
		} else {
			size *= 2
		}
	}
	if i >= size {
		steps := (i-size)/ceiling + 1
		if steps > (math.MaxInt64-size)/ceiling {
			return i + 1
		}
		size += steps * ceiling
	}
	if limit := d.cfg.MaxIndex; size > limit && limit >= i {
		size = limit + 1
	}
	return size
}

func (d *DenseStrategy) expand(i int64) {
	slots := make([]*Element, d.capacityFor(i))
	copy(slots, d.slots)
	d.slots = slots
}

func (d *DenseStrategy) Insert(i int64, v string) {
	if i >= int64(len(d.slots)) {
		d.expand(i)
	}
	if e := d.slots[i]; e != nil {
		e.Value = v
		return
	}

	d.slots[i] = &Element{Index: i, Value: v}
	d.count++
	if i > d.maxIndex {
		d.maxIndex = i
	}
	if d.minIndex < 0 || i < d.minIndex {
		d.minIndex = i
	}
}

func (d *DenseStrategy) Remove(i int64) (string, bool) {
	if i < 0 || i > d.maxIndex {
		return "", false
	}
	e := d.slots[i]
	if e == nil {
		return "", false
	}

	d.slots[i] = nil
	d.count--
	if d.count == 0 {
		d.maxIndex, d.minIndex = -1, -1
		return e.Value, true
	}

	if i == d.maxIndex {
		j := i - 1
		for d.slots[j] == nil {
			j--
		}
		d.maxIndex = j
	}
	if i == d.minIndex {
		j := i + 1
		for d.slots[j] == nil {
			j++
		}
		d.minIndex = j
	}
	return e.Value, true
}

func (d *DenseStrategy) Reference(i int64) (string, bool) {
	if i < 0 || i > d.maxIndex {
		return "", false
	}
	if e := d.slots[i]; e != nil {
		return e.Value, true
	}
	return "", false
}

func (d *DenseStrategy) Flush() {
	d.slots = nil
	d.count = 0
	d.maxIndex, d.minIndex = -1, -1
}

func (d *DenseStrategy) Clone() Strategy {
	dst := &DenseStrategy{
		cfg:      d.cfg,
		count:    d.count,
		maxIndex: d.maxIndex,
		minIndex: d.minIndex,
	}
	if d.slots != nil {
		dst.slots = make([]*Element, len(d.slots))
		for i := d.minIndex; i >= 0 && i <= d.maxIndex; i++ {
			if e := d.slots[i]; e != nil {
				ee := *e
				dst.slots[i] = &ee
			}
		}
	}
	return dst
}

func (d *DenseStrategy) Slice(start, end int64) Strategy {
	dst := NewDense(d.cfg)
	d.Walk(start, func(e Element) bool {
		if e.Index >= end {
			return false
		}
		dst.Insert(e.Index, e.Value)
		return true
	})
	return dst
}

func (d *DenseStrategy) ShiftLeft(n int64, dispose bool) []Element {
	var removed []Element
	if int64(d.count) <= n {
		if !dispose {
			removed = d.elements()
		}
		d.Flush()
		return removed
	}

	if !dispose {
		removed = make([]Element, 0, n)
	}
	i := d.minIndex
	for k := int64(0); k < n; i++ {
		if e := d.slots[i]; e != nil {
			if !dispose {
				removed = append(removed, *e)
			}
			d.slots[i] = nil
			k++
		}
	}

	// i is past the last removed slot, every occupied slot from there moves
	// down by n, in ascending order so that no slot is overwritten.
	first := int64(-1)
	for j := i; j <= d.maxIndex; j++ {
		e := d.slots[j]
		if e == nil {
			continue
		}
		if first < 0 {
			first = j - n
		}
		d.slots[j] = nil
		e.Index = j - n
		d.slots[j-n] = e
	}
	d.count -= int(n)
	d.maxIndex -= n
	d.minIndex = first
	return removed
}

func (d *DenseStrategy) ShiftRight(n int64) {
	if d.count == 0 {
		return
	}
	if hi := d.maxIndex + n; hi >= int64(len(d.slots)) {
		d.expand(hi)
	}
	// descending order so that no slot is overwritten
	for j := d.maxIndex; j >= d.minIndex; j-- {
		if e := d.slots[j]; e != nil {
			d.slots[j] = nil
			e.Index = j + n
			d.slots[j+n] = e
		}
	}
	d.maxIndex += n
	d.minIndex += n
}

func (d *DenseStrategy) Walk(start int64, fn func(Element) bool) {
	if d.count == 0 {
		return
	}
	for i := max(start, d.minIndex); i <= d.maxIndex; i++ {
		if e := d.slots[i]; e != nil {
			if !fn(*e) {
				return
			}
		}
	}
}

func (d *DenseStrategy) elements() []Element {
	elems := make([]Element, 0, d.count)
	d.Walk(0, func(e Element) bool {
		elems = append(elems, e)
		return true
	})
	return elems
}

// checkInvariants verifies the slot addressing and bookkeeping, it is used
// by tests.
func (d *DenseStrategy) checkInvariants() error {
	var (
		count    int
		lo, hi   = int64(-1), int64(-1)
		capacity = int64(len(d.slots))
	)
	for i, e := range d.slots {
		if e == nil {
			continue
		}
		if e.Index != int64(i) {
			return &InvariantError{Kind: Dense, Op: "check", Index: int64(i), Msg: "element stored in the wrong slot"}
		}
		if lo < 0 {
			lo = int64(i)
		}
		hi = int64(i)
		count++
	}
	switch {
	case count != d.count:
		return &InvariantError{Kind: Dense, Op: "check", Index: int64(count), Msg: "element count mismatch"}
	case hi != d.maxIndex:
		return &InvariantError{Kind: Dense, Op: "check", Index: d.maxIndex, Msg: "max index mismatch"}
	case lo != d.minIndex:
		return &InvariantError{Kind: Dense, Op: "check", Index: d.minIndex, Msg: "min index mismatch"}
	case d.maxIndex >= capacity:
		return &InvariantError{Kind: Dense, Op: "check", Index: d.maxIndex, Msg: "backing store too small"}
	}
	return nil
}
