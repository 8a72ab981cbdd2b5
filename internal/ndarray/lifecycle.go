package ndarray

// Clone returns an independent deep copy of the array.
//
// The copy has its own buffer with the same extents, strides and elements.
// Cloning a moved-from or released array yields an array with the same
// extents and no buffer.
func (a *Array[T, R]) Clone() *Array[T, R] {
	clone := &Array[T, R]{
		extents: a.extents.Clone(),
		strides: append([]int(nil), a.strides...),
	}
	if a.data != nil {
		clone.data = make([]T, len(a.data))
		copy(clone.data, a.data)
	}
	return clone
}

// Move transfers the buffer to a new array without copying elements.
//
// The returned array adopts the extents, strides and buffer of a. Afterwards
// a holds no buffer but keeps its extents, so TotalElements still reports
// the old count while Len is 0. a must not be indexed until it is assigned
// again with CopyFrom or MoveFrom.
func (a *Array[T, R]) Move() *Array[T, R] {
	moved := &Array[T, R]{
		extents: a.extents.Clone(),
		strides: append([]int(nil), a.strides...),
		data:    a.data,
	}
	a.data = nil
	return moved
}

// CopyFrom overwrites a with a deep copy of src.
//
// Copying an array onto itself is a no-op. When the extents already match
// and a owns a full buffer, the elements are copied in place without
// reallocating. Otherwise a drops its buffer, adopts the extents and
// strides of src and allocates a fresh buffer. If src holds no buffer, a
// ends up with src's extents and no buffer.
func (a *Array[T, R]) CopyFrom(src *Array[T, R]) {
	if a == src {
		return
	}

	if a.extents.Equal(src.extents) && a.data != nil && len(a.data) == a.TotalElements() {
		if src.data == nil {
			a.data = nil
			return
		}
		copy(a.data, src.data)
		return
	}

	a.data = nil
	a.extents = src.extents.Clone()
	a.strides = append([]int(nil), src.strides...)
	if src.data == nil {
		return
	}
	a.data = make([]T, len(src.data))
	copy(a.data, src.data)
}

// MoveFrom transfers the buffer of src into a.
//
// Moving an array onto itself is a no-op. Otherwise a drops its own buffer
// regardless of size, adopts src's extents, strides and buffer, and src is
// left in the moved-from state described on Move.
func (a *Array[T, R]) MoveFrom(src *Array[T, R]) {
	if a == src {
		return
	}

	a.extents = src.extents.Clone()
	a.strides = append([]int(nil), src.strides...)
	a.data = src.data
	src.data = nil
}

// Release drops the array's buffer. The memory is reclaimed by the garbage
// collector once nothing else references it. Releasing an array that holds
// no buffer is a no-op.
func (a *Array[T, R]) Release() {
	a.data = nil
}
