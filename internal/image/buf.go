// Package image provides the 8-bit output buffers of the allrgb pipeline and
// their file encodings.
package image

import (
	"errors"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrFormatMismatch is returned when a pixel accessor does not match the
	// buffer's format.
	ErrFormatMismatch = errors.New("image: accessor does not match buffer format")
)

// ImageBuf is a contiguous, tightly packed 8-bit image buffer.
//
// Thread safety: concurrent writes to distinct pixels are safe; anything
// else requires external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf creates a zeroed image buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format { return b.format }

// Bounds returns the width and height.
func (b *ImageBuf) Bounds() (int, int) { return b.width, b.height }

// Data returns the raw pixel bytes.
func (b *ImageBuf) Data() []byte { return b.data }

// RowBytes returns the bytes of row y.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of (x, y), or -1 if out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// SetRGB writes an RGB8 pixel.
func (b *ImageBuf) SetRGB(x, y int, rgb [3]byte) error {
	if b.format != FormatRGB8 {
		return ErrFormatMismatch
	}
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	copy(b.data[off:off+3], rgb[:])
	return nil
}

// RGB reads an RGB8 pixel. Out-of-range reads return black.
func (b *ImageBuf) RGB(x, y int) [3]byte {
	off := b.PixelOffset(x, y)
	if off < 0 || b.format != FormatRGB8 {
		return [3]byte{}
	}
	return [3]byte{b.data[off], b.data[off+1], b.data[off+2]}
}

// SetGray writes a Gray8 pixel.
func (b *ImageBuf) SetGray(x, y int, v uint8) error {
	if b.format != FormatGray8 {
		return ErrFormatMismatch
	}
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	b.data[off] = v
	return nil
}
