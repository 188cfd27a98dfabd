package rank

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/allrgb/internal/image"
	"github.com/gogpu/allrgb/internal/parallel"
	"github.com/gogpu/allrgb/internal/pixel"
)

func TestToColor(t *testing.T) {
	tests := []struct {
		rank uint32
		want [3]byte
	}{
		{0, [3]byte{0, 0, 0}},
		{1, [3]byte{0, 0, 1}},
		{2, [3]byte{0, 1, 0}},
		{4, [3]byte{1, 0, 0}},
		{7, [3]byte{1, 1, 1}},
		{8, [3]byte{0, 0, 2}},
		{1 << 21, [3]byte{0, 0, 128}},
		{1 << 22, [3]byte{0, 128, 0}},
		{1 << 23, [3]byte{128, 0, 0}},
		{Space - 1, [3]byte{255, 255, 255}},
		{0b101_010_001, [3]byte{0b100, 0b010, 0b101}},
	}

	for _, tt := range tests {
		if got := ToColor(tt.rank); got != tt.want {
			t.Errorf("ToColor(%#x) = %v, want %v", tt.rank, got, tt.want)
		}
	}
}

func TestToColor_IgnoresHighBits(t *testing.T) {
	for _, i := range []uint32{0, 5, 0x123456, Space - 1} {
		if got, want := ToColor(i|Space), ToColor(i); got != want {
			t.Errorf("ToColor(%#x) = %v, want %v", i|Space, got, want)
		}
	}
}

func TestToColor_BijectionAndRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("walks the full 24-bit space")
	}

	seen := make([]bool, Space)
	for i := range uint32(Space) {
		c := ToColor(i)
		packed := uint32(c[0])<<16 | uint32(c[1])<<8 | uint32(c[2])
		if seen[packed] {
			t.Fatalf("ToColor(%#x) = %v, already produced by a smaller rank", i, c)
		}
		seen[packed] = true

		if back := FromColor(c); back != i {
			t.Fatalf("FromColor(ToColor(%#x)) = %#x", i, back)
		}
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		rgb  [3]byte
		want uint32
	}{
		{[3]byte{0, 0, 0}, 0},
		{[3]byte{255, 255, 255}, Space - 1},
		{[3]byte{128, 0, 0}, 1 << 23},
		{[3]byte{0, 0, 1}, 1},
	}
	for _, tt := range tests {
		if got := FromColor(tt.rgb); got != tt.want {
			t.Errorf("FromColor(%v) = %#x, want %#x", tt.rgb, got, tt.want)
		}
	}
}

// =============================================================================
// Assign Tests
// =============================================================================

func TestAssign_TwoByTwo(t *testing.T) {
	img, _ := image.NewImageBuf(2, 2, image.FormatRGB8)
	sorted := []pixel.Keyed{
		{X: 1, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}

	if err := Assign(sorted, img, nil); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	seen := make(map[[3]byte]bool)
	for i, p := range sorted {
		got := img.RGB(int(p.X), int(p.Y))
		if want := ToColor(uint32(i)); got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v (rank %d)", p.X, p.Y, got, want, i)
		}
		if seen[got] {
			t.Errorf("colour %v assigned twice", got)
		}
		seen[got] = true
	}
}

func TestAssign_Parallel(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	const n = 128
	img, _ := image.NewImageBuf(n, n, image.FormatRGB8)
	sorted := make([]pixel.Keyed, 0, n*n)
	// Reverse grid order so ranks and positions disagree.
	for i := n*n - 1; i >= 0; i-- {
		sorted = append(sorted, pixel.Keyed{X: int32(i % n), Y: int32(i / n)})
	}

	if err := Assign(sorted, img, pool); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	for i, p := range sorted {
		if got, want := img.RGB(int(p.X), int(p.Y)), ToColor(uint32(i)); got != want {
			t.Fatalf("rank %d at (%d,%d) = %v, want %v", i, p.X, p.Y, got, want)
		}
	}
}

func TestAssign_Errors(t *testing.T) {
	img, _ := image.NewImageBuf(2, 2, image.FormatRGB8)

	if err := Assign(make([]pixel.Keyed, 3), img, nil); !errors.Is(err, ErrTargetSize) {
		t.Errorf("Assign(3 pixels) error = %v, want ErrTargetSize", err)
	}

	outside := []pixel.Keyed{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}
	if err := Assign(outside, img, nil); !errors.Is(err, image.ErrOutOfBounds) {
		t.Errorf("Assign(out of bounds) error = %v, want ErrOutOfBounds", err)
	}

	gray, _ := image.NewImageBuf(2, 2, image.FormatGray8)
	if err := Assign(make([]pixel.Keyed, 4), gray, nil); !errors.Is(err, image.ErrFormatMismatch) {
		t.Errorf("Assign(gray target) error = %v, want ErrFormatMismatch", err)
	}
}

func TestAssign_LowestFailingRank(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	const n = 128
	img, _ := image.NewImageBuf(n, n, image.FormatRGB8)
	sorted := make([]pixel.Keyed, n*n)
	for i := range sorted {
		sorted[i] = pixel.Keyed{X: int32(i % n), Y: int32(i / n)}
	}
	for _, bad := range []int{1500, 9000, 15000} {
		sorted[bad].X = n
	}

	for range 20 {
		err := Assign(sorted, img, pool)
		if !errors.Is(err, image.ErrOutOfBounds) {
			t.Fatalf("Assign() error = %v, want ErrOutOfBounds", err)
		}
		if !strings.HasPrefix(err.Error(), "rank 1500 ") {
			t.Fatalf("Assign() error = %v, want it to report rank 1500", err)
		}
	}
}
