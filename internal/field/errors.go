package field

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrFieldNotFound = errors.New("field not found")
	ErrNoFields      = errors.New("no field names given")
	ErrInvalidName   = errors.New("invalid field name")
	ErrRankMismatch  = errors.New("field rank does not match array rank")
	ErrTypeMismatch  = errors.New("field element type does not match array element type")
	ErrSizeMismatch  = errors.New("field data length does not match its extents")
	ErrShapeMismatch = errors.New("stacked fields have different extents")
	ErrNoStorage     = errors.New("array holds no buffer")
)

// FieldError provides the field and operation involved in a failure.
type FieldError struct {
	Field string // Field name
	Op    string // Operation, e.g. "lookup", "extract", "store"
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s field %q: %v", e.Op, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}
