// Copyright 2026 The velm Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/velm-sci/velm/internal/ndarray"
)

// Type aliases for public API

// Array is a dense N-dimensional array of T with rank R.
//
// Example:
//
//	a := ndarray.MustNew[int, ndarray.Rank2](4, 5)
//	a.Fill(-3)
//	a.Set(7, 1, 2)
type Array[T any, R Rank] = ndarray.Array[T, R]

// Extents holds the number of valid indices along each axis.
// Example: Extents{2, 3, 4} describes a 2×3×4 array.
type Extents = ndarray.Extents

// Rank fixes the number of axes of an Array at the type level.
type Rank = ndarray.Rank

// Built-in ranks.
type (
	Rank1 = ndarray.Rank1
	Rank2 = ndarray.Rank2
	Rank3 = ndarray.Rank3
	Rank4 = ndarray.Rank4
	Rank5 = ndarray.Rank5
	Rank6 = ndarray.Rank6
	Rank7 = ndarray.Rank7
	Rank8 = ndarray.Rank8
)

// IndexError describes a checked access that fell outside an axis.
type IndexError = ndarray.IndexError

// AxisError describes a request for an axis the array does not have.
type AxisError = ndarray.AxisError

// Errors.
var (
	ErrRankMismatch    = ndarray.ErrRankMismatch
	ErrNegativeExtent  = ndarray.ErrNegativeExtent
	ErrSizeMismatch    = ndarray.ErrSizeMismatch
	ErrTooLarge        = ndarray.ErrTooLarge
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange
	ErrAxisOutOfRange  = ndarray.ErrAxisOutOfRange
)

// Creation functions

// New creates a zero-valued array with the given extents.
//
// Example:
//
//	a, err := ndarray.New[float32, ndarray.Rank3](2, 3, 4)
func New[T any, R Rank](extents ...int) (*Array[T, R], error) {
	return ndarray.New[T, R](extents...)
}

// MustNew is like New but panics on error.
//
// Example:
//
//	a := ndarray.MustNew[int, ndarray.Rank2](4, 5)
func MustNew[T any, R Rank](extents ...int) *Array[T, R] {
	return ndarray.MustNew[T, R](extents...)
}

// FromSlice creates an array from a flat row-major slice.
// The slice is copied into the array's storage.
//
// Example:
//
//	a, err := ndarray.FromSlice[int, ndarray.Rank2]([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	v := a.At(1, 0) // 4
func FromSlice[T any, R Rank](data []T, extents ...int) (*Array[T, R], error) {
	return ndarray.FromSlice[T, R](data, extents...)
}
