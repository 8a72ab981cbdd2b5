package field

import (
	"fmt"
	"maps"
	"slices"

	"github.com/velm-sci/velm/internal/ndarray"
)

// Dataset is an in-memory Source.
//
// Fields are stored as private copies, so later changes to the slices or
// arrays they came from are not visible, and Field hands out fresh copies
// in turn. A Dataset is not safe for concurrent use while fields are being
// added.
type Dataset struct {
	fields map[string]entry
}

// entry keeps a stored field with a copier for its typed data.
type entry struct {
	field Field
	clone func() any
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{fields: make(map[string]entry)}
}

// PutSlice stores a copy of data as the named field, replacing any field
// with the same name. len(data) must equal the product of extents.
func PutSlice[T any](d *Dataset, name string, data []T, extents ...int) error {
	if name == "" {
		return &FieldError{Op: "store", Err: ErrInvalidName}
	}
	if err := checkSize(extents, len(data)); err != nil {
		return &FieldError{Field: name, Op: "store", Err: err}
	}

	stored := append(make([]T, 0, len(data)), data...)
	d.fields[name] = entry{
		field: Field{Name: name, Extents: slices.Clone(extents), Data: stored},
		clone: func() any { return append(make([]T, 0, len(stored)), stored...) },
	}
	return nil
}

// Store writes a copy of arr into the dataset as the named field.
// Arrays that hold no buffer are rejected with ErrNoStorage.
func Store[T any, R ndarray.Rank](d *Dataset, name string, arr *ndarray.Array[T, R]) error {
	if !arr.Owns() {
		return &FieldError{
			Field: name,
			Op:    "store",
			Err:   fmt.Errorf("%w: %v", ErrNoStorage, arr),
		}
	}
	return PutSlice(d, name, arr.Data(), arr.Extents()...)
}

// Field implements Source. The returned Extents and Data are copies that
// the caller may modify freely.
func (d *Dataset) Field(name string) (Field, error) {
	e, ok := d.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return Field{
		Name:    e.field.Name,
		Extents: slices.Clone(e.field.Extents),
		Data:    e.clone(),
	}, nil
}

// Names returns the field names in sorted order.
func (d *Dataset) Names() []string {
	return slices.Sorted(maps.Keys(d.fields))
}

// Len returns the number of fields.
func (d *Dataset) Len() int {
	return len(d.fields)
}
