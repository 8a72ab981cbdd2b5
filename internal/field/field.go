// Package field defines how named fields of a dataset become arrays.
//
// A Source hands out named fields as flat row-major slices plus extents.
// Extract turns one field, or several fields of equal shape stacked along
// a new leading axis, into an ndarray.Array of the requested element type
// and rank. Readers for concrete file formats live outside this module and
// only need to implement Source.
//
// Example:
//
//	ds := field.NewDataset()
//	_ = field.PutSlice(ds, "temperature", temps, 10, 20, 30)
//
//	t, err := field.Extract[float64, ndarray.Rank3](ds, "temperature")
//	if err != nil {
//	    log.Fatal(err)
//	}
package field

import (
	"fmt"

	"github.com/velm-sci/velm/internal/ndarray"
)

// Field is one named field of a dataset.
type Field struct {
	Name    string
	Extents []int // Per-axis extents of the field
	Data    any   // A []E slice of len product(Extents), row-major
}

// Source looks up named fields.
//
// Field returns an error wrapping ErrFieldNotFound for unknown names.
type Source interface {
	Field(name string) (Field, error)
}

// Extract reads the named fields from src into a new array.
//
// With one name, the field must have rank R and element type T and its
// data is copied as-is. With several names, every field must have rank R-1,
// element type T and identical extents; the result stacks them along a new
// leading axis in argument order, so result[i, ...] is names[i].
//
// Errors are *FieldError values wrapping ErrNoFields, ErrFieldNotFound,
// ErrRankMismatch, ErrTypeMismatch, ErrSizeMismatch or ErrShapeMismatch.
func Extract[T any, R ndarray.Rank](src Source, names ...string) (*ndarray.Array[T, R], error) {
	var r R
	switch len(names) {
	case 0:
		return nil, &FieldError{Op: "extract", Err: ErrNoFields}
	case 1:
		data, f, err := lookup[T](src, names[0], r.Rank())
		if err != nil {
			return nil, err
		}
		arr, err := ndarray.FromSlice[T, R](data, f.Extents...)
		if err != nil {
			return nil, &FieldError{Field: names[0], Op: "extract", Err: err}
		}
		return arr, nil
	default:
		return stack[T, R](src, names, r.Rank())
	}
}

// stack extracts several fields of rank-1 into one array with a leading
// axis of extent len(names).
func stack[T any, R ndarray.Rank](src Source, names []string, rank int) (*ndarray.Array[T, R], error) {
	var (
		arr   *ndarray.Array[T, R]
		first []int
		cell  int
	)

	for i, name := range names {
		data, f, err := lookup[T](src, name, rank-1)
		if err != nil {
			return nil, err
		}

		if arr == nil {
			first = f.Extents
			cell = len(data)
			extents := append([]int{len(names)}, f.Extents...)
			arr, err = ndarray.New[T, R](extents...)
			if err != nil {
				return nil, &FieldError{Field: name, Op: "extract", Err: err}
			}
		} else if !ndarray.Extents(first).Equal(f.Extents) {
			return nil, &FieldError{
				Field: name,
				Op:    "extract",
				Err:   fmt.Errorf("%w: %v vs %v (field %q)", ErrShapeMismatch, f.Extents, first, names[0]),
			}
		}

		copy(arr.Data()[i*cell:(i+1)*cell], data)
	}

	return arr, nil
}

// lookup fetches a field and checks its rank, element type and length.
func lookup[T any](src Source, name string, rank int) ([]T, Field, error) {
	f, err := src.Field(name)
	if err != nil {
		return nil, Field{}, &FieldError{Field: name, Op: "lookup", Err: err}
	}

	if len(f.Extents) != rank {
		return nil, Field{}, &FieldError{
			Field: name,
			Op:    "extract",
			Err:   fmt.Errorf("%w: field has rank %d, want %d", ErrRankMismatch, len(f.Extents), rank),
		}
	}

	data, ok := f.Data.([]T)
	if !ok {
		return nil, Field{}, &FieldError{
			Field: name,
			Op:    "extract",
			Err:   fmt.Errorf("%w: field holds %T, want %T", ErrTypeMismatch, f.Data, []T(nil)),
		}
	}

	if err := checkSize(f.Extents, len(data)); err != nil {
		return nil, Field{}, &FieldError{Field: name, Op: "extract", Err: err}
	}

	return data, f, nil
}

// checkSize validates extents and that n elements fill them exactly.
func checkSize(extents []int, n int) error {
	ext := ndarray.Extents(extents)
	if err := ext.Validate(); err != nil {
		return err
	}
	if want := ext.NumElements(); want != n {
		return fmt.Errorf("%w: extents %v require %d elements, got %d", ErrSizeMismatch, extents, want, n)
	}
	return nil
}
