package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when the file format is not supported.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// Save writes the buffer to path in the given file format.
func (b *ImageBuf) Save(path string, ff FileFormat) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, ff); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes the buffer to w in the given file format.
func (b *ImageBuf) Encode(w io.Writer, ff FileFormat) error {
	switch ff {
	case FilePPM:
		return b.EncodePPM(w)
	case FilePNG:
		if err := png.Encode(w, b.ToStdImage()); err != nil {
			return fmt.Errorf("image: encode PNG: %w", err)
		}
	case FileTIFF:
		if err := tiff.Encode(w, b.ToStdImage(), &tiff.Options{Compression: tiff.Uncompressed}); err != nil {
			return fmt.Errorf("image: encode TIFF: %w", err)
		}
	case FileBMP:
		if err := bmp.Encode(w, b.ToStdImage()); err != nil {
			return fmt.Errorf("image: encode BMP: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, ff)
	}
	return nil
}

// EncodePPM writes a binary netpbm image: P5 for Gray8, P6 for RGB8, both
// with a maximum value of 255.
func (b *ImageBuf) EncodePPM(w io.Writer) error {
	opts := &netpbm.EncodeOptions{Format: netpbm.PPM, MaxValue: 255}
	if b.format.IsGrayscale() {
		opts.Format = netpbm.PGM
	}
	if err := netpbm.Encode(w, b.ToStdImage(), opts); err != nil {
		return fmt.Errorf("image: encode %v: %w", opts.Format, err)
	}
	return nil
}

// ToStdImage converts the buffer to a standard library image: *image.Gray for
// Gray8, opaque *image.RGBA for RGB8.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	rgba := image.NewRGBA(rect)
	for y := range b.height {
		row := b.RowBytes(y)
		dst := rgba.Pix[y*rgba.Stride:]
		for x := range b.width {
			dst[x*4] = row[x*3]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return rgba
}
