package ndarray

import (
	"fmt"
	"math"
	"slices"
)

// Extents holds the number of valid indices along each axis.
type Extents []int

// NumElements returns the product of all extents.
// Any zero extent gives zero elements. The result is only meaningful for
// extents that pass Validate.
func (e Extents) NumElements() int {
	n := 1
	for _, ext := range e {
		n *= ext
	}
	return n
}

// Validate checks that no extent is negative and that the product of the
// non-zero extents fits in an int. Zero extents are valid.
//
// Every stride and every in-range offset is bounded by that product, so
// NumElements, Strides and OffsetOf cannot overflow on validated extents.
func (e Extents) Validate() error {
	n := 1
	for i, ext := range e {
		if ext < 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrNegativeExtent, i, ext)
		}
		if ext == 0 {
			continue
		}
		if n > math.MaxInt/ext {
			return fmt.Errorf("%w: extents %v exceed %d elements", ErrTooLarge, []int(e), math.MaxInt)
		}
		n *= ext
	}
	return nil
}

// Equal checks if two extents are equal.
func (e Extents) Equal(other Extents) bool {
	return slices.Equal(e, other)
}

// Clone returns a copy of the extents.
func (e Extents) Clone() Extents {
	clone := make(Extents, len(e))
	copy(clone, e)
	return clone
}

// Strides calculates row-major strides for the extents.
// The last axis has stride 1 and stride[i] = stride[i+1] * extent[i+1].
func (e Extents) Strides() []int {
	strides := make([]int, len(e))
	if len(e) == 0 {
		return strides
	}

	strides[len(e)-1] = 1
	for i := len(e) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * e[i+1]
	}
	return strides
}
