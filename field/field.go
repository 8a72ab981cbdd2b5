// Copyright 2026 The velm Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package field turns named fields of a dataset into ndarray arrays.
//
// Readers for concrete file formats implement Source; Extract then builds
// arrays of the caller's element type and rank from one field, or from
// several equally shaped fields stacked along a new leading axis:
//
//	wind, err := field.Extract[float64, ndarray.Rank3](src, "u", "v")
//	// wind.Extent(0) == 2; wind.At(0, ...) is "u", wind.At(1, ...) is "v"
//
// Dataset is an in-memory Source, useful for tests and for handing arrays
// between components by name.
package field

import (
	"github.com/velm-sci/velm/internal/field"
	"github.com/velm-sci/velm/ndarray"
)

// Field is one named field of a dataset.
type Field = field.Field

// Source looks up named fields.
type Source = field.Source

// Dataset is an in-memory Source.
type Dataset = field.Dataset

// FieldError provides the field and operation involved in a failure.
type FieldError = field.FieldError

// Errors.
var (
	ErrFieldNotFound = field.ErrFieldNotFound
	ErrNoFields      = field.ErrNoFields
	ErrInvalidName   = field.ErrInvalidName
	ErrRankMismatch  = field.ErrRankMismatch
	ErrTypeMismatch  = field.ErrTypeMismatch
	ErrSizeMismatch  = field.ErrSizeMismatch
	ErrShapeMismatch = field.ErrShapeMismatch
	ErrNoStorage     = field.ErrNoStorage
)

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return field.NewDataset()
}

// Extract reads the named fields from src into a new array.
// See the package documentation for the stacking rule.
func Extract[T any, R ndarray.Rank](src Source, names ...string) (*ndarray.Array[T, R], error) {
	return field.Extract[T, R](src, names...)
}

// PutSlice stores a copy of data as the named field of d.
func PutSlice[T any](d *Dataset, name string, data []T, extents ...int) error {
	return field.PutSlice(d, name, data, extents...)
}

// Store writes a copy of arr into d as the named field.
func Store[T any, R ndarray.Rank](d *Dataset, name string, arr *ndarray.Array[T, R]) error {
	return field.Store(d, name, arr)
}
