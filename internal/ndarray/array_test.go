package ndarray

import (
	"errors"
	"math/bits"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return nil
}

func TestNew(t *testing.T) {
	a, err := New[int, Rank3](2, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Rank())
	assert.Equal(t, Extents{2, 3, 4}, a.Extents())
	assert.Equal(t, []int{12, 4, 1}, a.Strides())
	assert.Equal(t, 24, a.TotalElements())
	assert.Equal(t, 24, a.Len())
	assert.True(t, a.Owns())
	assert.Equal(t, "Array[2 3 4]", a.String())
}

func TestNew_CopiesExtents(t *testing.T) {
	ext := []int{4, 5}
	a, err := New[int, Rank2](ext...)
	require.NoError(t, err)

	ext[0] = 100
	assert.Equal(t, 4, a.Extent(0))

	got := a.Extents()
	got[1] = 100
	assert.Equal(t, 5, a.Extent(1))
}

func TestNew_RankMismatch(t *testing.T) {
	_, err := New[int, Rank3](2, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRankMismatch)

	_, err = New[int, Rank2](2, 3, 4)
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestNew_NegativeExtent(t *testing.T) {
	_, err := New[float64, Rank2](4, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeExtent)
}

func TestNew_TooLarge(t *testing.T) {
	half := 1 << (bits.UintSize / 2)

	a, err := New[int8, Rank2](half, half)
	require.Error(t, err, "element count wraps to zero")
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Nil(t, a)

	_, err = New[int8, Rank2](3, 1<<(bits.UintSize-2))
	assert.ErrorIs(t, err, ErrTooLarge, "element count wraps negative")

	assert.PanicsWithError(t, err.Error(), func() {
		MustNew[int8, Rank2](3, 1<<(bits.UintSize-2))
	})

	_, err = FromSlice[int8, Rank2](nil, half, half)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestNew_ZeroExtent(t *testing.T) {
	a, err := New[int, Rank3](3, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, a.TotalElements())
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.Owns(), "empty buffer is still a valid buffer")
	assert.Empty(t, a.Data())

	b := a.Clone()
	assert.True(t, b.Owns())
	assert.Equal(t, Extents{3, 0, 2}, b.Extents())
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = MustNew[int, Rank1](3)
	})
	assert.Panics(t, func() {
		_ = MustNew[int, Rank1](3, 4)
	})
}

func TestFromSlice(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5}
	a, err := FromSlice[int, Rank2](data, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, a.At(1, 2))
	assert.Equal(t, 3, a.At(1, 0))

	data[0] = 42
	assert.Equal(t, 0, a.At(0, 0), "FromSlice must copy its input")

	_, err = FromSlice[int, Rank2](data, 2, 2)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = FromSlice[int, Rank2](data, 6)
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestZeroInitialized(t *testing.T) {
	a := MustNew[int, Rank2](4, 5)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			assert.Equal(t, 0, a.At(i, j))
		}
	}

	s := MustNew[string, Rank1](3)
	for v := range s.Values() {
		assert.Equal(t, "", v)
	}

	type cell struct {
		temp float64
		ok   bool
	}
	c := MustNew[cell, Rank3](2, 2, 2)
	for v := range c.Values() {
		assert.Zero(t, v.temp)
		assert.False(t, v.ok)
	}
}

func TestOffsetOf(t *testing.T) {
	a4 := MustNew[int, Rank4](2, 3, 4, 5)
	assert.Equal(t, 0, a4.OffsetOf(0, 0, 0, 0))
	assert.Equal(t, 60, a4.OffsetOf(1, 0, 0, 0))
	assert.Equal(t, 20, a4.OffsetOf(0, 1, 0, 0))
	assert.Equal(t, 5, a4.OffsetOf(0, 0, 1, 0))
	assert.Equal(t, 1, a4.OffsetOf(0, 0, 0, 1))
	assert.Equal(t, 119, a4.OffsetOf(1, 2, 3, 4))

	a3 := MustNew[int, Rank3](2, 3, 4)
	assert.Equal(t, 0, a3.OffsetOf(0, 0, 0))
	assert.Equal(t, 12, a3.OffsetOf(1, 0, 0))
	assert.Equal(t, 4, a3.OffsetOf(0, 1, 0))
	assert.Equal(t, 1, a3.OffsetOf(0, 0, 1))

	a2 := MustNew[int, Rank2](4, 5)
	assert.Equal(t, 0, a2.OffsetOf(0, 0))
	assert.Equal(t, 5, a2.OffsetOf(1, 0))
	assert.Equal(t, 1, a2.OffsetOf(0, 1))
}

func TestOffsetOf_ClosedFormAndInjective(t *testing.T) {
	for _, ext := range []Extents{{2, 3, 4}, {1, 7, 1}, {5, 1, 3}} {
		a := MustNew[int, Rank3](ext...)
		strides := ext.Strides()
		seen := make(map[int]bool)

		for i := 0; i < ext[0]; i++ {
			for j := 0; j < ext[1]; j++ {
				for k := 0; k < ext[2]; k++ {
					off := a.OffsetOf(i, j, k)
					assert.Equal(t, i*strides[0]+j*strides[1]+k*strides[2], off)
					assert.GreaterOrEqual(t, off, 0)
					assert.Less(t, off, a.TotalElements())
					assert.False(t, seen[off], "offset %d reused for %v", off, []int{i, j, k})
					seen[off] = true
				}
			}
		}
		assert.Len(t, seen, a.TotalElements())
	}
}

func TestOffsetOf_DoesNotCheckBounds(t *testing.T) {
	a := MustNew[int, Rank2](4, 5)
	assert.Equal(t, 5, a.OffsetOf(0, 5))
	assert.Equal(t, 25, a.OffsetOf(5, 0))
}

func TestOffsetOf_RankMismatchPanics(t *testing.T) {
	a := MustNew[int, Rank3](2, 3, 4)
	err := recoverError(func() { _ = a.OffsetOf(1, 1) })
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestRoundTrip(t *testing.T) {
	a := MustNew[int, Rank4](2, 3, 4, 2)
	val := func(i, j, k, l int) int { return 1000*i + 100*j + 10*k + l }

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				for l := 0; l < 2; l++ {
					a.Set(val(i, j, k, l), i, j, k, l)
				}
			}
		}
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				for l := 0; l < 2; l++ {
					assert.Equal(t, val(i, j, k, l), a.At(i, j, k, l))
					assert.Equal(t, val(i, j, k, l), a.AtUnchecked(i, j, k, l))
				}
			}
		}
	}
}

func TestRoundTrip_Unchecked(t *testing.T) {
	a := MustNew[float64, Rank2](3, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			a.SetUnchecked(float64(i)+float64(j)/10, i, j)
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, float64(i)+float64(j)/10, a.At(i, j), 1e-12)
		}
	}
}

func TestPtr(t *testing.T) {
	a := MustNew[int, Rank2](2, 2)

	p := a.Ptr(1, 0)
	*p = 7
	assert.Equal(t, 7, a.At(1, 0))

	q := a.PtrUnchecked(0, 1)
	*q += 3
	assert.Equal(t, 3, a.At(0, 1))
}

func TestUnchecked_AliasesWithinBuffer(t *testing.T) {
	a := MustNew[int, Rank2](4, 5)
	a.Set(9, 1, 0)
	// (0, 5) is past axis 1 but lands on offset 5, which is (1, 0).
	assert.Equal(t, 9, a.AtUnchecked(0, 5))
}

func TestAt_OutOfBoundsPanicsPerAxis(t *testing.T) {
	a := MustNew[int, Rank4](4, 2, 4, 2)

	tests := []struct {
		idx  []int
		axis int
	}{
		{[]int{4, 0, 0, 0}, 0},
		{[]int{0, 2, 0, 0}, 1},
		{[]int{0, 0, 4, 0}, 2},
		{[]int{0, 0, 0, 2}, 3},
		{[]int{-1, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		err := recoverError(func() { _ = a.At(tt.idx...) })
		require.Error(t, err, "At%v", tt.idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, tt.axis, ie.Axis)
		assert.Equal(t, tt.idx[tt.axis], ie.Index)
		assert.Equal(t, a.Extent(tt.axis), ie.Extent)

		assert.Panics(t, func() { a.Set(1, tt.idx...) }, "Set%v", tt.idx)
		assert.Panics(t, func() { _ = a.Ptr(tt.idx...) }, "Ptr%v", tt.idx)
	}

	assert.PanicsWithError(t, "index 4 out of range for axis 0 (extent 4)", func() {
		_ = a.At(4, 0, 0, 0)
	})
}

func TestAt_RankMismatchPanics(t *testing.T) {
	a := MustNew[int, Rank3](2, 2, 2)
	err := recoverError(func() { _ = a.At(0, 0) })
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestCheckIndex(t *testing.T) {
	a := MustNew[int, Rank3](2, 3, 4)

	assert.NoError(t, a.CheckIndex(1, 2, 3))
	assert.ErrorIs(t, a.CheckIndex(2, 0, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, a.CheckIndex(0, 0, 4), ErrIndexOutOfRange)
	assert.ErrorIs(t, a.CheckIndex(0, 0), ErrRankMismatch)
}

func TestZeroValueArray(t *testing.T) {
	var z Array[int, Rank2]

	assert.Equal(t, 2, z.Rank())
	assert.Equal(t, 0, z.Extent(1))
	assert.False(t, z.Owns())

	err := z.CheckIndex(0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrRankMismatch)

	err = recoverError(func() { _ = z.At(0, 0) })
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, IndexError{Axis: 0, Index: 0, Extent: 0}, *ie)

	err = recoverError(func() { _ = z.OffsetOf(0) })
	assert.ErrorIs(t, err, ErrRankMismatch)
	assert.Contains(t, err.Error(), "got 1 indices, want 2")

	assert.ErrorIs(t, z.CheckIndex(0, 0, 0), ErrRankMismatch)
}

func TestArrayNotCopyable(t *testing.T) {
	typ := reflect.TypeFor[Array[float64, Rank3]]()
	require.Positive(t, typ.NumField())

	f := typ.Field(0)
	assert.Equal(t, reflect.TypeFor[noCopy](), f.Type)
	assert.True(t, reflect.PointerTo(f.Type).Implements(reflect.TypeFor[sync.Locker]()),
		"copylocks only reports types with Lock and Unlock methods")
	assert.Zero(t, f.Type.Size())
}

func TestExtent(t *testing.T) {
	a := MustNew[int, Rank3](2, 3, 4)
	assert.Equal(t, 2, a.Extent(0))
	assert.Equal(t, 3, a.Extent(1))
	assert.Equal(t, 4, a.Extent(2))

	err := recoverError(func() { _ = a.Extent(3) })
	assert.ErrorIs(t, err, ErrAxisOutOfRange)

	var ae *AxisError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 3, ae.Axis)
	assert.Equal(t, 3, ae.Rank)

	assert.Panics(t, func() { _ = a.Extent(-1) })
}
