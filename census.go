package allrgb

import "github.com/bits-and-blooms/bitset"

// Coverage summarizes how an image uses the 24-bit colour space.
type Coverage struct {
	// Pixels is the number of pixels examined.
	Pixels int
	// Distinct is the number of different colours among them.
	Distinct int
	// Duplicates is the number of pixels whose colour appeared earlier.
	Duplicates int
}

// Complete reports whether the image holds every 24-bit colour exactly once.
func (c Coverage) Complete() bool {
	return c.Pixels == ColorSpace && c.Distinct == ColorSpace && c.Duplicates == 0
}

// Missing returns the number of 24-bit colours that do not appear.
func (c Coverage) Missing() int {
	return ColorSpace - c.Distinct
}

// Census counts the colours of packed R,G,B bytes using a 2²⁴-bit presence
// set. A trailing partial pixel is ignored.
func Census(rgb []byte) Coverage {
	seen := bitset.New(ColorSpace)
	c := Coverage{Pixels: len(rgb) / 3}

	for i := 0; i+2 < len(rgb); i += 3 {
		v := uint(rgb[i])<<16 | uint(rgb[i+1])<<8 | uint(rgb[i+2])
		if seen.Test(v) {
			c.Duplicates++
			continue
		}
		seen.Set(v)
	}

	c.Distinct = int(seen.Count())
	return c
}
