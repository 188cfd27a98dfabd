// Package rank maps sort ranks to 24-bit colours and writes them back to the
// grid.
//
// A rank's 24 bits are read three at a time from the top; the three bits of
// each group go to the red, green and blue bytes at the same bit position:
//
//	rank: R7 G7 B7 R6 G6 B6 R5 G5 B5 ... R0 G0 B0
//
// Consecutive ranks therefore differ mostly in the low bits of all three
// channels at once, so cells that sort next to each other receive similar
// colours. The mapping is a bijection between [0, 2²⁴) and all RGB triples;
// FromColor inverts it.
package rank

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/allrgb/internal/parallel"
	"github.com/gogpu/allrgb/internal/pixel"
)

// Space is the number of distinct 24-bit colours.
const Space = 1 << 24

// ErrTargetSize is returned by Assign when the output buffer cannot hold
// every pixel.
var ErrTargetSize = errors.New("rank: target size mismatch")

// ToColor returns the colour for rank i.
// Bits of i above bit 23 are ignored.
func ToColor(i uint32) [3]byte {
	var rgb [3]byte
	for k := range 8 {
		shift := 3 * k
		rgb[0] |= byte((i>>(shift+2))&1) << k
		rgb[1] |= byte((i>>(shift+1))&1) << k
		rgb[2] |= byte((i>>shift)&1) << k
	}
	return rgb
}

// FromColor returns the rank whose colour is rgb.
func FromColor(rgb [3]byte) uint32 {
	var i uint32
	for k := range 8 {
		shift := 3 * k
		i |= uint32((rgb[0]>>k)&1) << (shift + 2)
		i |= uint32((rgb[1]>>k)&1) << (shift + 1)
		i |= uint32((rgb[2]>>k)&1) << shift
	}
	return i
}

// Target receives the colour assigned to each grid cell.
type Target interface {
	Bounds() (width, height int)
	SetRGB(x, y int, rgb [3]byte) error
}

// Assign gives the pixel at rank i the colour ToColor(i) and stores it in dst
// at that pixel's own coordinates. sorted must hold exactly one record per
// cell of dst. Each rank writes a distinct cell, so ranks are processed in
// parallel over the pool. On failure the error of the lowest failing rank is
// returned, whatever the worker count.
func Assign(sorted []pixel.Keyed, dst Target, pool *parallel.WorkerPool) error {
	w, h := dst.Bounds()
	if len(sorted) != w*h {
		return fmt.Errorf("%w: %d pixels for a %dx%d image", ErrTargetSize, len(sorted), w, h)
	}

	var (
		mu      sync.Mutex
		errRank = len(sorted)
		errAt   error
	)
	pool.Range(len(sorted), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p := sorted[i]
			if err := dst.SetRGB(int(p.X), int(p.Y), ToColor(uint32(i))); err != nil {
				mu.Lock()
				if i < errRank {
					errRank = i
					errAt = fmt.Errorf("rank %d at (%d,%d): %w", i, p.X, p.Y, err)
				}
				mu.Unlock()
				return
			}
		}
	})
	return errAt
}
