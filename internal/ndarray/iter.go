package ndarray

import "iter"

// Fill sets every element to v. Extents and strides are unchanged.
func (a *Array[T, R]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Data returns the flat buffer in row-major order.
// The slice aliases the array's storage (zero-copy) and is nil when the
// array holds no buffer.
//
// WARNING: Modifications to the returned slice modify the array.
func (a *Array[T, R]) Data() []T {
	return a.data
}

// All iterates over (linear offset, element) pairs in storage order.
func (a *Array[T, R]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates over the elements in storage order.
func (a *Array[T, R]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Indices iterates over every in-range index tuple in row-major order, so
// the n-th tuple yielded has offset n. Nothing is yielded when any extent
// is zero.
//
// The yielded slice is reused between iterations; copy it to retain it.
func (a *Array[T, R]) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if a.extents.NumElements() == 0 {
			return
		}
		idx := make([]int, len(a.extents))
		for {
			if !yield(idx) {
				return
			}
			// Odometer increment, last axis fastest.
			axis := len(idx) - 1
			for ; axis >= 0; axis-- {
				idx[axis]++
				if idx[axis] < a.extents[axis] {
					break
				}
				idx[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}
