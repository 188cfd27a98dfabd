package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate is returned by Normalize when a field has no usable value
// range (constant, or containing NaN or infinity).
var ErrDegenerate = errors.New("field: degenerate value range")

// Range is the closed interval of values found in a field.
type Range struct {
	Min, Max float32
}

// Span returns Max - Min.
func (r Range) Span() float32 { return r.Max - r.Min }

func (r Range) String() string {
	return fmt.Sprintf("%f..%f", r.Min, r.Max)
}

// Bounds scans f once and returns its minimum and maximum.
func Bounds(f *Field) Range {
	r := Range{Min: f.data[0], Max: f.data[0]}
	for _, v := range f.data[1:] {
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r
}

// Normalize rescales f in place so its minimum becomes 0 and its maximum 1,
// and returns the range it found. A field whose range is empty or not finite
// is left untouched and ErrDegenerate is returned.
func Normalize(f *Field) (Range, error) {
	r := Bounds(f)
	if !finite(r.Min) || !finite(r.Max) || r.Max <= r.Min {
		return r, fmt.Errorf("%w: %v", ErrDegenerate, r)
	}
	// The span of any two finite float32 values, and its inverse, are finite
	// in float64.
	lo := float64(r.Min)
	scale := 1 / (float64(r.Max) - lo)
	for i, v := range f.data {
		f.data[i] = float32((float64(v) - lo) * scale)
	}
	return r, nil
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
