package allrgb

import (
	"github.com/gogpu/allrgb/internal/field"
	"github.com/gogpu/allrgb/internal/pixel"
)

// DefaultSize is the grid edge length at which the image holds every 24-bit
// colour exactly once (4096² = 2²⁴).
const DefaultSize = 4096

// MaxSize bounds the grid edge so that every buffer size fits in an int and
// pixel coordinates fit in an int32.
const MaxSize = 1 << 14

// Noise is a continuous 2D noise function returning values in roughly
// [-1, 1]. Implementations must be deterministic and safe for concurrent use.
type Noise interface {
	Eval(px, py float32) float32
}

// Phases are the eight noise-domain offsets of one field.
type Phases = field.Phases

// Default phase sets of the reference image. They are mutually distinct, so
// the three fields share their warp structure but differ in content.
var (
	DefaultHuePhases = field.HuePhases
	DefaultSatPhases = field.SatPhases
	DefaultValPhases = field.ValPhases
)

// Order selects how cells are ranked before colours are assigned.
type Order = pixel.Order

// Sort orders.
const (
	// OrderLexicographic ranks by red, then green, then blue.
	OrderLexicographic = pixel.OrderLexicographic

	// OrderInterleaved ranks by the bit-interleaved 96-bit colour key.
	OrderInterleaved = pixel.OrderInterleaved
)

// ParseOrder parses "lex" or "interleaved".
func ParseOrder(s string) (Order, error) {
	return pixel.ParseOrder(s)
}

// Option configures a Generator during creation.
//
// Example:
//
//	// Full 4096x4096 allrgb image with the original phase constants
//	g, err := allrgb.New()
//
//	// Small preview on four workers
//	g, err := allrgb.New(allrgb.WithSize(512), allrgb.WithWorkers(4))
type Option func(*options)

// options holds Generator configuration.
type options struct {
	size    int
	workers int
	seed    int64
	noise   Noise
	hue     Phases
	sat     Phases
	val     Phases
	warp    float32
	order   Order
}

// defaultOptions reproduce the reference image.
func defaultOptions() options {
	return options{
		size:    DefaultSize,
		workers: 0,
		hue:     DefaultHuePhases,
		sat:     DefaultSatPhases,
		val:     DefaultValPhases,
		warp:    field.DefaultWarp,
		order:   OrderLexicographic,
	}
}

// WithSize sets the grid edge length. Only DefaultSize yields a complete
// allrgb image; other sizes still produce distinct ranks per cell.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithWorkers sets the number of goroutines used by the data-parallel stages.
// Zero uses GOMAXPROCS; one runs every stage on the calling goroutine.
// The output does not depend on this setting.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeed selects the permutation tables of the built-in noise.
// It has no effect when WithNoise is used.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithNoise replaces the built-in 4-octave simplex noise.
// The Generator does not close a caller-supplied Noise.
func WithNoise(n Noise) Option {
	return func(o *options) {
		o.noise = n
	}
}

// WithPhases sets the noise-domain offsets of the hue, saturation and value
// fields. The three sets should differ, or the fields will be identical.
func WithPhases(hue, sat, val Phases) Option {
	return func(o *options) {
		o.hue, o.sat, o.val = hue, sat, val
	}
}

// WithWarp sets the domain-warp displacement, in cells, applied by a
// full-scale noise sample in each of the two warp rounds.
func WithWarp(cells float32) Option {
	return func(o *options) {
		o.warp = cells
	}
}

// WithOrder sets the ranking order. The default is OrderLexicographic.
func WithOrder(ord Order) Option {
	return func(o *options) {
		o.order = ord
	}
}
