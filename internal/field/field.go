// Package field implements the scalar fields that drive colour placement:
// generation by double domain-warped noise and range normalization.
package field

import (
	"errors"
	"fmt"
)

// Field errors.
var (
	// ErrInvalidSize is returned when a field is created with a non-positive size.
	ErrInvalidSize = errors.New("field: invalid size")

	// ErrOutOfBounds is returned when a cell outside the grid is addressed.
	ErrOutOfBounds = errors.New("field: coordinates out of bounds")
)

// Field is a square grid of float32 values stored row-major, cell (x, y) at
// index y*Size+x.
type Field struct {
	size int
	data []float32
}

// New allocates a zeroed size×size field.
func New(size int) (*Field, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Field{size: size, data: make([]float32, size*size)}, nil
}

// FromData wraps existing row-major data without copying.
// len(data) must be exactly size*size.
func FromData(size int, data []float32) (*Field, error) {
	if size <= 0 || len(data) != size*size {
		return nil, fmt.Errorf("%w: size %d with %d values", ErrInvalidSize, size, len(data))
	}
	return &Field{size: size, data: data}, nil
}

// Size returns the edge length of the grid.
func (f *Field) Size() int { return f.size }

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.data) }

// Data returns the row-major backing slice.
func (f *Field) Data() []float32 { return f.data }

// Row returns the values of row y.
func (f *Field) Row(y int) []float32 {
	return f.data[y*f.size : (y+1)*f.size]
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) (float32, error) {
	if x < 0 || y < 0 || x >= f.size || y >= f.size {
		return 0, ErrOutOfBounds
	}
	return f.data[y*f.size+x], nil
}
