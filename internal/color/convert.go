package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSVToRGB converts hue, saturation and value, each in [0,1], to RGB.
// Hue wraps, so h=1 is the same red as h=0.
func HSVToRGB(h, s, v float32) ColorF32 {
	deg := math.Mod(float64(h)*360, 360)
	if deg < 0 {
		deg += 360
	}
	c := colorful.Hsv(deg, clamp01(float64(s)), clamp01(float64(v)))
	return ColorF32{
		R: float32(clamp01(c.R)),
		G: float32(clamp01(c.G)),
		B: float32(clamp01(c.B)),
	}
}

// F32ToU8 converts ColorF32 to ColorU8 with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
	}
}

// UnitToU8 maps a single [0,1] value to [0,255] with rounding.
func UnitToU8(v float32) uint8 {
	return clampAndRound(v)
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
