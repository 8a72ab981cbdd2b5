package ndarray

// OffsetOf returns the linear buffer offset of an index tuple:
// the sum of idx[axis] * stride[axis].
//
// It does not check bounds. Panics if len(idx) differs from the rank.
func (a *Array[T, R]) OffsetOf(idx ...int) int {
	if n := rankOf[R](); len(idx) != n {
		panic(rankError("indices", len(idx), n))
	}
	offset := 0
	for i, x := range idx {
		if i < len(a.strides) {
			offset += x * a.strides[i]
		}
	}
	return offset
}

// CheckIndex validates an index tuple against the extents.
// It returns an *IndexError for the first axis that is out of range.
//
// The zero Array behaves as if every extent were 0.
func (a *Array[T, R]) CheckIndex(idx ...int) error {
	if n := rankOf[R](); len(idx) != n {
		return rankError("indices", len(idx), n)
	}
	for i, x := range idx {
		ext := 0
		if i < len(a.extents) {
			ext = a.extents[i]
		}
		if x < 0 || x >= ext {
			return &IndexError{Axis: i, Index: x, Extent: ext}
		}
	}
	return nil
}

// checkedOffset panics on any out-of-range axis and returns the offset.
func (a *Array[T, R]) checkedOffset(idx []int) int {
	if err := a.CheckIndex(idx...); err != nil {
		panic(err)
	}
	return a.OffsetOf(idx...)
}

// At returns the element at the given indices.
//
// An out-of-range index is a programming error: At panics with an
// *IndexError (wrapping ErrIndexOutOfRange), which terminates the program
// unless recovered. Use CheckIndex to test indices without panicking.
//
// Example:
//
//	a := ndarray.MustNew[int, ndarray.Rank2](3, 4)
//	v := a.At(1, 2) // row 1, column 2
func (a *Array[T, R]) At(idx ...int) T {
	return a.data[a.checkedOffset(idx)]
}

// Set stores v at the given indices.
// Panics like At on an out-of-range index.
func (a *Array[T, R]) Set(v T, idx ...int) {
	a.data[a.checkedOffset(idx)] = v
}

// Ptr returns a pointer to the element at the given indices.
// Panics like At on an out-of-range index.
//
// The pointer is only meaningful while the array owns its current buffer;
// after CopyFrom reallocates, MoveFrom, Move or Release it no longer refers
// to the array's storage.
func (a *Array[T, R]) Ptr(idx ...int) *T {
	return &a.data[a.checkedOffset(idx)]
}

// AtUnchecked returns the element at the given indices without checking
// them against the extents.
//
// The caller must guarantee every index is in range. An index past its axis
// whose offset still lands inside the buffer reads a different element; an
// offset past the buffer panics in the runtime.
func (a *Array[T, R]) AtUnchecked(idx ...int) T {
	return a.data[a.OffsetOf(idx...)]
}

// SetUnchecked stores v at the given indices without bounds checking.
// Same preconditions as AtUnchecked.
func (a *Array[T, R]) SetUnchecked(v T, idx ...int) {
	a.data[a.OffsetOf(idx...)] = v
}

// PtrUnchecked returns a pointer to the element at the given indices
// without bounds checking. Same preconditions as AtUnchecked.
func (a *Array[T, R]) PtrUnchecked(idx ...int) *T {
	return &a.data[a.OffsetOf(idx...)]
}
