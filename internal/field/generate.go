package field

import (
	"github.com/gogpu/allrgb/internal/noise"
	"github.com/gogpu/allrgb/internal/parallel"
)

// DefaultWarp is the distance, in cells, a full-scale noise sample displaces
// a coordinate during each warp round.
const DefaultWarp = 40

// Phases are the eight offsets that place a field within the noise domain.
// P0..P3 drive the first warp round, P4..P7 the second.
type Phases [8]float32

// Default phase sets. They are mutually distinct, so the three fields share
// the warp structure but show different content.
var (
	HuePhases = Phases{0.45, -0.57, 0.123, -4.8, -2.2, 0.33, -0.22, 0.12}
	ValPhases = Phases{-0.55, 0.22, 0.955, -1.5, 0.5, -0.99, 2.48, 2.09}
	SatPhases = Phases{-3.33, 2.29, -0.111, 2.2, 0.8, -0.22, 1.11, 1.02}
)

// Generate fills f with double domain-warped noise remapped to [0, 1].
//
// The coordinate (x, y) is displaced once by two noise samples, the result is
// displaced again by two more, and the final position is sampled. The noise
// domain spans two units across the grid regardless of its size. Rows are
// independent and are spread over the pool; a nil pool runs inline.
func Generate(f *Field, o noise.Oracle, p Phases, warp float32, pool *parallel.WorkerPool) {
	n := f.size
	f0 := float32(2) / float32(n)

	pool.Range(n, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := f.Row(y)
			fy := float32(y)
			for x := range row {
				fx := float32(x)

				ox := o.Eval(p[0]-fy*f0, p[1]+fx*f0)
				oy := o.Eval(p[2]+fy*f0, p[3]+fx*f0)
				xx := fx + warp*ox
				yy := fy + warp*oy

				oxx := o.Eval(p[4]-xx*f0, p[5]+yy*f0)
				oyy := o.Eval(p[6]+xx*f0, p[7]-yy*f0)
				xxx := xx + warp*oxx
				yyy := yy + warp*oyy

				v := o.Eval(xxx*f0, yyy*f0)
				row[x] = (1 + v) / 2
			}
		}
	})
}
