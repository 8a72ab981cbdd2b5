package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrRankMismatch    = errors.New("wrong number of extents or indices for array rank")
	ErrNegativeExtent  = errors.New("negative extent")
	ErrSizeMismatch    = errors.New("data length does not match element count")
	ErrTooLarge        = errors.New("element count overflows int")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAxisOutOfRange  = errors.New("axis out of range")
)

// IndexError describes a checked access that fell outside an axis.
type IndexError struct {
	Axis   int // Failing axis
	Index  int // Index supplied for that axis
	Extent int // Extent of that axis
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for axis %d (extent %d)", e.Index, e.Axis, e.Extent)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// AxisError describes a request for an axis the array does not have.
type AxisError struct {
	Axis int
	Rank int
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("axis %d out of range for rank %d", e.Axis, e.Rank)
}

// Unwrap returns ErrAxisOutOfRange.
func (e *AxisError) Unwrap() error {
	return ErrAxisOutOfRange
}

func rankError(what string, got, want int) error {
	return fmt.Errorf("%w: got %d %s, want %d", ErrRankMismatch, got, what, want)
}
