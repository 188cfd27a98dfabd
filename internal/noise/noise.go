// Package noise provides the coherent-noise oracle that drives field
// generation.
//
// An Oracle maps a pair of phase coordinates to a continuous value in
// approximately [-1, 1]. The default implementation, Simplex, blends four
// octaves of 2D OpenSimplex noise.
package noise

import (
	"errors"
	"sync/atomic"

	"github.com/ojrac/opensimplex-go"
)

// ErrClosed is the panic value raised by Eval on a closed Simplex.
var ErrClosed = errors.New("noise: oracle used after Close")

// Octaves is the number of frequency layers blended by Simplex.
const Octaves = 4

// Oracle is a pure 2D noise function.
//
// Implementations must be deterministic and safe for concurrent Eval calls;
// field generation evaluates rows in parallel.
type Oracle interface {
	Eval(px, py float32) float32
}

// octave weights: frequency doubles and amplitude halves per layer.
var (
	octaveFreq = [Octaves]float32{1, 2, 4, 8}
	octaveAmp  = [Octaves]float32{1, 0.5, 0.25, 0.125}
)

// ampSum keeps the blended result inside the range of a single octave.
const ampSum = 1 + 0.5 + 0.25 + 0.125

// Simplex is a 4-octave OpenSimplex oracle.
//
// Its lookup tables are built by NewSimplex and released by Close. Evaluating
// a closed Simplex panics with ErrClosed rather than returning garbage.
type Simplex struct {
	base   atomic.Pointer[opensimplex.Noise32]
	seed   int64
	closed atomic.Bool
}

// NewSimplex builds the permutation tables for the given seed.
// Two oracles with the same seed produce identical values.
func NewSimplex(seed int64) *Simplex {
	s := &Simplex{seed: seed}
	n := opensimplex.New32(seed)
	s.base.Store(&n)
	return s
}

// Seed returns the seed the tables were built from.
func (s *Simplex) Seed() int64 {
	return s.seed
}

// Eval returns the blended noise at (px, py), approximately in [-1, 1].
func (s *Simplex) Eval(px, py float32) float32 {
	n := s.base.Load()
	if n == nil {
		panic(ErrClosed)
	}
	base := *n

	var sum float32
	for o := range Octaves {
		f := octaveFreq[o]
		sum += octaveAmp[o] * base.Eval2(px*f, py*f)
	}
	return sum / ampSum
}

// Close releases the lookup tables. It is safe to call more than once.
func (s *Simplex) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.base.Store(nil)
	}
	return nil
}
