// Copyright 2026 The velm Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense, owning N-dimensional arrays for scientific
// field data.
//
// # Overview
//
// An Array[T, R] stores elements of type T in one contiguous buffer laid out
// in row-major order (the last axis varies fastest). The rank is fixed by
// the type parameter R, one of Rank1 through Rank8 or any user type that
// implements Rank:
//
//	temp := ndarray.MustNew[float64, ndarray.Rank3](nz, ny, nx)
//	temp.Set(288.15, 0, 10, 20)
//	v := temp.At(0, 10, 20)
//
// Strides are derived from the extents and never change independently of
// them. OffsetOf returns the linear offset of an index tuple.
//
// # Checked and unchecked access
//
// At, Set and Ptr validate every index against its axis. An out-of-range
// index is a programming error and panics with an *IndexError; left
// unrecovered this terminates the program. Call CheckIndex to obtain the
// same error without panicking.
//
// AtUnchecked, SetUnchecked and PtrUnchecked skip the per-axis check for hot
// loops whose bounds are already known. Passing an out-of-range index to
// them is a caller bug: the result may be another element of the array.
//
// # Ownership
//
// Each buffer has exactly one owning Array. Go has no copy or move
// constructors, so the transfers are explicit:
//
//	b := a.Clone()    // deep copy, independent buffer
//	c := a.Move()     // c takes a's buffer, a keeps its extents but no buffer
//	d.CopyFrom(b)     // deep copy into d, reusing d's buffer if extents match
//	d.MoveFrom(c)     // d takes c's buffer
//	d.Release()       // drop d's buffer
//
// A moved-from array still reports its old extents and TotalElements, while
// Len is 0 and Owns is false. It must not be indexed until it is assigned
// again with CopyFrom or MoveFrom.
//
// # Concurrency
//
// Arrays do no locking. Any number of goroutines may read an array that
// nobody writes. Give each writer its own Clone, or hand the buffer over
// with Move.
package ndarray
