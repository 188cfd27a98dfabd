// Package color converts the hue, saturation and value fields into the RGB
// colour field that the pixel builder sorts.
package color

import (
	"errors"
	"fmt"

	"github.com/gogpu/allrgb/internal/field"
	"github.com/gogpu/allrgb/internal/parallel"
)

// ErrSizeMismatch is returned when the three input fields differ in size.
var ErrSizeMismatch = errors.New("color: field sizes differ")

// ColorF32 is an RGB colour with float32 components in [0,1].
type ColorF32 struct {
	R, G, B float32
}

// ColorU8 is an RGB colour with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B uint8
}

// Field3 is a square grid of RGB colours stored row-major, three float32
// values per cell.
type Field3 struct {
	size int
	data []float32
}

// NewField3 allocates a zeroed size×size colour field.
func NewField3(size int) (*Field3, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", field.ErrInvalidSize, size)
	}
	return &Field3{size: size, data: make([]float32, size*size*3)}, nil
}

// Size returns the edge length of the grid.
func (f *Field3) Size() int { return f.size }

// Data returns the row-major R,G,B backing slice.
func (f *Field3) Data() []float32 { return f.data }

// At returns the colour at (x, y). It panics if (x, y) is outside the grid.
func (f *Field3) At(x, y int) ColorF32 {
	if x < 0 || y < 0 || x >= f.size || y >= f.size {
		panic(fmt.Sprintf("color: At(%d, %d) outside %dx%d field", x, y, f.size, f.size))
	}
	i := (y*f.size + x) * 3
	return ColorF32{R: f.data[i], G: f.data[i+1], B: f.data[i+2]}
}

// Index returns the colour of the cell at row-major index i.
func (f *Field3) Index(i int) ColorF32 {
	d := f.data[i*3 : i*3+3]
	return ColorF32{R: d[0], G: d[1], B: d[2]}
}

// Synthesize converts three normalized fields into a colour field, cell by
// cell, with HSVToRGB.
func Synthesize(hue, sat, val *field.Field, pool *parallel.WorkerPool) (*Field3, error) {
	n := hue.Size()
	if sat.Size() != n || val.Size() != n {
		return nil, fmt.Errorf("%w: hue %d, sat %d, val %d", ErrSizeMismatch, n, sat.Size(), val.Size())
	}

	out, err := NewField3(n)
	if err != nil {
		return nil, err
	}

	h, s, v := hue.Data(), sat.Data(), val.Data()
	pool.Range(len(h), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c := HSVToRGB(h[i], s[i], v[i])
			d := out.data[i*3 : i*3+3]
			d[0], d[1], d[2] = c.R, c.G, c.B
		}
	})
	return out, nil
}
