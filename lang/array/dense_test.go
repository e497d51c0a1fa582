package array

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseGrowth(t *testing.T) {
	cases := []struct {
		cfg     DenseConfig
		inserts []int64
		want    int64
	}{
		{DenseConfig{}, nil, 0},
		{DenseConfig{}, []int64{0}, 16},
		{DenseConfig{}, []int64{15}, 16},
		{DenseConfig{}, []int64{16}, 32},
		{DenseConfig{}, []int64{0, 100}, 128},
		{DenseConfig{}, []int64{4095}, 4096},
		{DenseConfig{}, []int64{4096}, 8192},
		{DenseConfig{}, []int64{9000}, 12288},
		{DenseConfig{}, []int64{5000, 9000}, 12288},
		{DenseConfig{InitialCapacity: 4, GrowthCeiling: 10}, []int64{3}, 4},
		{DenseConfig{InitialCapacity: 4, GrowthCeiling: 10}, []int64{4}, 8},
		{DenseConfig{InitialCapacity: 4, GrowthCeiling: 10}, []int64{8}, 10},
		{DenseConfig{InitialCapacity: 4, GrowthCeiling: 10}, []int64{10}, 20},
		{DenseConfig{InitialCapacity: 4, GrowthCeiling: 10}, []int64{25}, 30},
		{DenseConfig{InitialCapacity: 4, GrowthCeiling: 10}, []int64{1 << 20}, 1048580},
		{DenseConfig{MaxIndex: 100}, []int64{98}, 101},
		{DenseConfig{MaxIndex: 100}, []int64{10, 100}, 101},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v-%v", c.cfg, c.inserts), func(t *testing.T) {
			d := NewDense(c.cfg)
			for _, i := range c.inserts {
				d.Insert(i, "x")
			}
			assert.Equal(t, c.want, d.Cap())
			require.NoError(t, d.checkInvariants())
		})
	}
}

func TestDenseLargeIndexGrowsLinearly(t *testing.T) {
	const index = 1_000_000

	d := NewDense(DenseConfig{})
	d.Insert(index, "x")

	// past the ceiling the store grows by ceiling-sized steps, never by
	// doubling to the next power of two
	assert.Greater(t, d.Cap(), int64(index))
	assert.LessOrEqual(t, d.Cap(), int64(index+1+DefaultGrowthCeiling))
	assert.Zero(t, d.Cap()%DefaultGrowthCeiling)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, int64(index), d.MaxIndex())
	assert.Equal(t, int64(index), d.MinIndex())

	d.Insert(index+DefaultGrowthCeiling, "y")
	assert.LessOrEqual(t, d.Cap(), int64(index+1+2*DefaultGrowthCeiling))
	require.NoError(t, d.checkInvariants())
}

func TestDenseCapacityPastCeiling(t *testing.T) {
	// computed in one step, whatever the distance to the ceiling
	d := NewDense(DenseConfig{MaxIndex: math.MaxInt64})
	assert.Equal(t, int64(1<<62+DefaultGrowthCeiling), d.capacityFor(1<<62))
	assert.Equal(t, int64(math.MaxInt64), d.capacityFor(math.MaxInt64-1))

	d = NewDense(DenseConfig{InitialCapacity: 3, GrowthCeiling: 5, MaxIndex: math.MaxInt64})
	assert.Equal(t, int64(5), d.capacityFor(4))
	assert.Equal(t, int64(10), d.capacityFor(5))
	assert.Equal(t, int64(1005), d.capacityFor(1000))
	assert.Equal(t, int64(1005), d.capacityFor(1004))

	// the index limit caps the capacity
	d = NewDense(DenseConfig{MaxIndex: 4100})
	assert.Equal(t, int64(4101), d.capacityFor(4096))
	assert.Equal(t, int64(4100), d.IndexLimit())
	assert.Equal(t, int64(DefaultMaxIndex), NewDense(DenseConfig{}).IndexLimit())
}

func TestDenseOverwriteKeepsSlot(t *testing.T) {
	d := NewDense(DenseConfig{})
	d.Insert(3, "a")
	e := d.slots[3]
	d.Insert(3, "b")
	assert.Same(t, e, d.slots[3])
	assert.Equal(t, "b", e.Value)
	assert.Equal(t, 1, d.Len())
}

func TestDenseRemoveScansInward(t *testing.T) {
	d := NewDense(DenseConfig{})
	for _, i := range []int64{2, 7, 40, 41, 90} {
		d.Insert(i, fmt.Sprint(i))
	}

	v, ok := d.Remove(90)
	require.True(t, ok)
	assert.Equal(t, "90", v)
	assert.Equal(t, int64(41), d.MaxIndex())

	v, ok = d.Remove(2)
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, int64(7), d.MinIndex())

	// interior removal does not move the extremes
	_, ok = d.Remove(40)
	require.True(t, ok)
	assert.Equal(t, int64(7), d.MinIndex())
	assert.Equal(t, int64(41), d.MaxIndex())

	_, ok = d.Remove(40)
	assert.False(t, ok)
	_, ok = d.Remove(1000)
	assert.False(t, ok)
	require.NoError(t, d.checkInvariants())
}

func TestDenseShiftRelocates(t *testing.T) {
	d := NewDense(DenseConfig{})
	for _, i := range []int64{1, 3, 14} {
		d.Insert(i, fmt.Sprint(i))
	}
	e := d.slots[3]

	// crossing the capacity during a shift grows the store
	d.ShiftRight(5)
	assert.Equal(t, int64(32), d.Cap())
	assert.Same(t, e, d.slots[8])
	assert.Equal(t, int64(8), e.Index)
	assert.Equal(t, int64(6), d.MinIndex())
	assert.Equal(t, int64(19), d.MaxIndex())
	require.NoError(t, d.checkInvariants())

	removed := d.ShiftLeft(1, false)
	assert.Equal(t, []Element{{6, "1"}}, removed)
	assert.Same(t, e, d.slots[7])
	assert.Equal(t, int64(7), d.MinIndex())
	assert.Equal(t, int64(18), d.MaxIndex())
	require.NoError(t, d.checkInvariants())
}

func TestDenseFlushReleasesStore(t *testing.T) {
	d := NewDense(DenseConfig{})
	d.Insert(100, "x")
	require.NotZero(t, d.Cap())

	d.Flush()
	assert.Zero(t, d.Cap())
	assert.Equal(t, 0, d.Len())
	require.NoError(t, d.checkInvariants())

	d.Insert(1, "y")
	assert.Equal(t, int64(16), d.Cap())
}

func TestDenseClone(t *testing.T) {
	d := NewDense(DenseConfig{InitialCapacity: 2, GrowthCeiling: 8})
	for _, i := range []int64{0, 5, 9} {
		d.Insert(i, fmt.Sprint(i))
	}

	c := d.Clone().(*DenseStrategy)
	assert.Equal(t, d.cfg, c.cfg)
	assert.Equal(t, d.Cap(), c.Cap())
	assert.NotSame(t, d.slots[5], c.slots[5])
	require.NoError(t, c.checkInvariants())

	c.Insert(5, "changed")
	v, _ := d.Reference(5)
	assert.Equal(t, "5", v)
}
