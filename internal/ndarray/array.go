// Package ndarray provides a dense, owning N-dimensional array with a rank
// fixed at the type level and a row-major strided layout.
package ndarray

import "fmt"

// Array is a dense N-dimensional array of T with rank R.
//
// The array exclusively owns a contiguous buffer of TotalElements() elements
// laid out in row-major order. Strides are always derived from the extents.
// The zero Array is not usable; create arrays with New, MustNew or
// FromSlice. An Array must be used through a pointer: copying the struct
// value would share the buffer, and go vet's copylocks check reports such
// copies. Use Clone, Move, CopyFrom and MoveFrom.
//
// Array performs no synchronization. Concurrent readers are safe; concurrent
// mutation of one array is a data race.
//
// Example:
//
//	a, err := ndarray.New[float64, ndarray.Rank2](4, 5)
//	if err != nil {
//	    return err
//	}
//	a.Set(3.5, 1, 2)
//	v := a.At(1, 2) // 3.5
type Array[T any, R Rank] struct {
	noCopy noCopy

	extents Extents
	strides []int
	data    []T // nil once moved from or released
}

// noCopy may be embedded in structs that must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by go vet's copylocks checker.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a zero-valued array with the given extents.
// The number of extents must equal the rank of R, none may be negative and
// their product must fit in an int (ErrTooLarge). Running out of memory
// for a count that fits is fatal, as for any Go allocation.
func New[T any, R Rank](extents ...int) (*Array[T, R], error) {
	if n := rankOf[R](); len(extents) != n {
		return nil, rankError("extents", len(extents), n)
	}

	ext := Extents(extents).Clone()
	if err := ext.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extents: %w", err)
	}

	return &Array[T, R]{
		extents: ext,
		strides: ext.Strides(),
		data:    make([]T, ext.NumElements()),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any, R Rank](extents ...int) *Array[T, R] {
	a, err := New[T, R](extents...)
	if err != nil {
		panic(err)
	}
	return a
}

// FromSlice creates an array from a flat row-major slice.
// The slice is copied into the array's storage.
func FromSlice[T any, R Rank](data []T, extents ...int) (*Array[T, R], error) {
	a, err := New[T, R](extents...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%w: extents %v require %d elements, but got %d",
			ErrSizeMismatch, a.extents, len(a.data), len(data))
	}
	copy(a.data, data)
	return a, nil
}

// Rank returns the number of axes.
func (a *Array[T, R]) Rank() int {
	return rankOf[R]()
}

// Extents returns a copy of the array's extents.
func (a *Array[T, R]) Extents() Extents {
	return a.extents.Clone()
}

// Extent returns the extent of one axis.
// Panics with an *AxisError if axis is not in [0, Rank()).
func (a *Array[T, R]) Extent(axis int) int {
	if n := rankOf[R](); axis < 0 || axis >= n {
		panic(&AxisError{Axis: axis, Rank: n})
	}
	if axis >= len(a.extents) {
		return 0
	}
	return a.extents[axis]
}

// Strides returns a copy of the array's row-major strides.
func (a *Array[T, R]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// TotalElements returns the product of the extents.
//
// It does not look at the buffer: a moved-from array keeps reporting the
// element count of the extents it had before the move.
func (a *Array[T, R]) TotalElements() int {
	return a.extents.NumElements()
}

// Len returns the length of the owned buffer (0 when none is held).
func (a *Array[T, R]) Len() int {
	return len(a.data)
}

// Owns reports whether the array currently holds a buffer.
// It is false after Move, MoveFrom (as source) and Release.
func (a *Array[T, R]) Owns() bool {
	return a.data != nil
}

// String returns a short description such as "Array[4 5]".
func (a *Array[T, R]) String() string {
	if !a.Owns() {
		return fmt.Sprintf("Array%v(moved)", []int(a.extents))
	}
	return fmt.Sprintf("Array%v", []int(a.extents))
}
