package image

import (
	"fmt"
	"strings"
)

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// bytesPerPixel is indexed by Format.
var bytesPerPixel = [formatCount]int{
	FormatGray8: 1,
	FormatRGB8:  3,
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return bytesPerPixel[f]
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f == FormatGray8
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	default:
		return "Unknown"
	}
}

// FileFormat is an on-disk image encoding.
type FileFormat uint8

const (
	// FilePPM is binary netpbm: P6 for RGB buffers, P5 for grayscale.
	FilePPM FileFormat = iota
	// FilePNG is lossless PNG.
	FilePNG
	// FileTIFF is uncompressed TIFF.
	FileTIFF
	// FileBMP is 24-bit (or 8-bit paletted gray) BMP.
	FileBMP
)

// ParseFileFormat accepts a format name or a file extension with or without
// the leading dot.
func ParseFileFormat(s string) (FileFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "ppm", "pgm", "pnm":
		return FilePPM, nil
	case "png":
		return FilePNG, nil
	case "tif", "tiff":
		return FileTIFF, nil
	case "bmp":
		return FileBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Ext returns the file extension, including the dot, for a buffer of pixel
// format pf. Grayscale netpbm files use .pgm.
func (f FileFormat) Ext(pf Format) string {
	switch f {
	case FilePPM:
		if pf.IsGrayscale() {
			return ".pgm"
		}
		return ".ppm"
	case FilePNG:
		return ".png"
	case FileTIFF:
		return ".tiff"
	case FileBMP:
		return ".bmp"
	default:
		return ""
	}
}

func (f FileFormat) String() string {
	switch f {
	case FilePPM:
		return "ppm"
	case FilePNG:
		return "png"
	case FileTIFF:
		return "tiff"
	case FileBMP:
		return "bmp"
	default:
		return fmt.Sprintf("FileFormat(%d)", uint8(f))
	}
}
