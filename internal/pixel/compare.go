package pixel

import (
	"cmp"
	"fmt"
	"math/bits"
)

// Order selects how Keyed records are ranked.
type Order uint8

const (
	// OrderLexicographic compares R, then G, then B as unsigned integers.
	OrderLexicographic Order = iota

	// OrderInterleaved compares the 96-bit key R31 G31 B31 R30 ... R0 G0 B0,
	// so the high bits of all three channels outrank the low bits of any one.
	OrderInterleaved
)

func (o Order) String() string {
	switch o {
	case OrderLexicographic:
		return "lex"
	case OrderInterleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps a name produced by Order.String back to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "lex", "lexicographic":
		return OrderLexicographic, nil
	case "interleaved", "morton":
		return OrderInterleaved, nil
	default:
		return 0, fmt.Errorf("pixel: unknown order %q", s)
	}
}

// CompareFunc returns the comparator for o. Records with identical colour
// keys are ordered by grid position (row, then column), so the order is
// strict and total over any set of distinct cells.
func (o Order) CompareFunc() func(a, b Keyed) int {
	if o == OrderInterleaved {
		return compareInterleavedThenGrid
	}
	return Compare
}

// CompareBits compares the colour keys of a and b one bit at a time: R from
// bit 31 down to bit 0, then G, then B. At the first differing bit the record
// holding the 1 is greater. It returns 0 when all 96 bits are equal.
//
// It is the reference definition of the lexicographic order; Compare is the
// fast equivalent used for sorting.
func CompareBits(a, b Keyed) int {
	ac := [3]uint32{a.R, a.G, a.B}
	bc := [3]uint32{b.R, b.G, b.B}
	for ch := range 3 {
		for bit := 31; bit >= 0; bit-- {
			msk := uint32(1) << bit
			x, y := ac[ch]&msk, bc[ch]&msk
			if x > y {
				return 1
			}
			if x < y {
				return -1
			}
		}
	}
	return 0
}

// CompareColor compares R, then G, then B as unsigned integers.
func CompareColor(a, b Keyed) int {
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	if c := cmp.Compare(a.G, b.G); c != 0 {
		return c
	}
	return cmp.Compare(a.B, b.B)
}

// Compare orders by CompareColor, breaking ties by grid position.
func Compare(a, b Keyed) int {
	if c := CompareColor(a, b); c != 0 {
		return c
	}
	return compareGrid(a, b)
}

// CompareInterleaved compares the bit-interleaved 96-bit keys of a and b.
//
// The most significant differing bit of the interleaved key is the highest
// differing bit position across the three channels; when several channels
// first differ at that same position, R outranks G and G outranks B.
func CompareInterleaved(a, b Keyed) int {
	dr := bits.Len32(a.R ^ b.R)
	dg := bits.Len32(a.G ^ b.G)
	db := bits.Len32(a.B ^ b.B)

	top := max(dr, dg, db)
	switch {
	case top == 0:
		return 0
	case dr == top:
		return cmp.Compare(a.R, b.R)
	case dg == top:
		return cmp.Compare(a.G, b.G)
	default:
		return cmp.Compare(a.B, b.B)
	}
}

func compareInterleavedThenGrid(a, b Keyed) int {
	if c := CompareInterleaved(a, b); c != 0 {
		return c
	}
	return compareGrid(a, b)
}

func compareGrid(a, b Keyed) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
