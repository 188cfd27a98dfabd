// Package pixel builds the sortable pixel records of the allrgb pipeline and
// orders them.
//
// Each grid cell becomes a Keyed record holding its coordinates and its
// colour quantized to 32 bits per channel. The wide channels make exact ties
// between neighbouring cells rare, which keeps the sort order meaningful where
// 8-bit or float comparisons would collapse many cells onto one key.
package pixel

import (
	"github.com/gogpu/allrgb/internal/color"
	"github.com/gogpu/allrgb/internal/parallel"
)

// Keyed is one grid cell tagged with its full-precision colour key.
type Keyed struct {
	X, Y    int32
	R, G, B uint32
}

// Quantize scales a [0,1] channel to the full uint32 range, truncating.
// Values outside [0,1] are clamped.
func Quantize(c float32) uint32 {
	if c <= 0 || c != c {
		return 0
	}
	if c >= 1 {
		return 0xffffffff
	}
	return uint32(float64(c) * 0xffffffff)
}

// Build returns one Keyed record per cell of cf, in row-major order, so the
// record for (x, y) starts at index y*size+x.
func Build(cf *color.Field3, pool *parallel.WorkerPool) []Keyed {
	n := cf.Size()
	out := make([]Keyed, n*n)

	pool.Range(len(out), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c := cf.Index(i)
			out[i] = Keyed{
				X: int32(i % n),
				Y: int32(i / n),
				R: Quantize(c.R),
				G: Quantize(c.G),
				B: Quantize(c.B),
			}
		}
	})
	return out
}
