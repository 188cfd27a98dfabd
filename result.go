package allrgb

import (
	"errors"
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/allrgb/internal/color"
	"github.com/gogpu/allrgb/internal/field"
	"github.com/gogpu/allrgb/internal/image"
)

// FileFormat is an output image encoding.
type FileFormat = image.FileFormat

// Output encodings.
const (
	FormatPPM  = image.FilePPM
	FormatPNG  = image.FilePNG
	FormatTIFF = image.FileTIFF
	FormatBMP  = image.FileBMP
)

// ParseFormat parses a format name such as "ppm" or "png".
func ParseFormat(s string) (FileFormat, error) {
	return image.ParseFileFormat(s)
}

// FieldRange is the value range a field had before normalization.
type FieldRange struct {
	Name     string
	Min, Max float32
}

// StageTiming is the wall time spent in one pipeline stage.
type StageTiming struct {
	Stage   string
	Elapsed time.Duration
}

// Result holds the final image and the intermediate buffers it was built from.
type Result struct {
	size    int
	order   Order
	hue     *field.Field
	sat     *field.Field
	val     *field.Field
	color   *color.Field3
	image   *image.ImageBuf
	ranges  []FieldRange
	timings []StageTiming
}

// Size returns the grid edge length.
func (r *Result) Size() int { return r.size }

// Order returns the ranking order the image was built with.
func (r *Result) Order() Order { return r.order }

// Ranges returns the pre-normalization range of each field, in generation order.
func (r *Result) Ranges() []FieldRange { return r.ranges }

// Timings returns the duration of each stage, in execution order.
func (r *Result) Timings() []StageTiming { return r.timings }

// Pixels returns the final image as packed row-major R,G,B bytes.
func (r *Result) Pixels() []byte { return r.image.Data() }

// RGB returns the final colour at (x, y).
func (r *Result) RGB(x, y int) [3]byte { return r.image.RGB(x, y) }

// Image returns the final image as an opaque *image.RGBA.
func (r *Result) Image() stdimage.Image { return r.image.ToStdImage() }

// Digest returns a 64-bit xxHash of the final image bytes. Two runs with the
// same options produce the same digest.
func (r *Result) Digest() uint64 { return xxhash.Sum64(r.image.Data()) }

// Census counts the colours of the final image.
func (r *Result) Census() Coverage { return Census(r.image.Data()) }

// output is one file written by Save.
type output struct {
	name string
	buf  func() (*image.ImageBuf, error)
}

// Save writes the final image and its diagnostic sources into dir:
//
//	all  final image, one colour per rank
//	hue  normalized hue field, grayscale
//	sat  normalized saturation field, grayscale
//	val  normalized value field, grayscale
//	out  HSV colour field before ranking
//
// Every file is attempted. Save returns the paths written and the joined
// errors of the files that failed.
func (r *Result) Save(dir string, ff FileFormat) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("allrgb: create output dir: %w", err)
	}

	outputs := []output{
		{"all", func() (*image.ImageBuf, error) { return r.image, nil }},
		{"hue", func() (*image.ImageBuf, error) { return fieldImage(r.hue) }},
		{"sat", func() (*image.ImageBuf, error) { return fieldImage(r.sat) }},
		{"val", func() (*image.ImageBuf, error) { return fieldImage(r.val) }},
		{"out", func() (*image.ImageBuf, error) { return colorImage(r.color) }},
	}

	log := Logger()
	var (
		written []string
		errs    []error
	)
	for _, o := range outputs {
		buf, err := o.buf()
		if err != nil {
			errs = append(errs, fmt.Errorf("allrgb: %s: %w", o.name, err))
			continue
		}
		path := filepath.Join(dir, o.name+ff.Ext(buf.Format()))
		if err := buf.Save(path, ff); err != nil {
			log.Warn("save failed", "path", path, "err", err)
			errs = append(errs, fmt.Errorf("allrgb: save %s: %w", path, err))
			continue
		}
		log.Info("saved", "path", path)
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}

// fieldImage renders a normalized field as 8-bit grayscale.
func fieldImage(f *field.Field) (*image.ImageBuf, error) {
	n := f.Size()
	buf, err := image.NewImageBuf(n, n, image.FormatGray8)
	if err != nil {
		return nil, err
	}
	for y := range n {
		for x := range n {
			v, err := f.At(x, y)
			if err != nil {
				return nil, err
			}
			if err := buf.SetGray(x, y, color.UnitToU8(v)); err != nil {
				return nil, err
			}
		}
	}
	return buf, nil
}

// colorImage renders a colour field as 8-bit RGB.
func colorImage(cf *color.Field3) (*image.ImageBuf, error) {
	n := cf.Size()
	buf, err := image.NewImageBuf(n, n, image.FormatRGB8)
	if err != nil {
		return nil, err
	}
	dst := buf.Data()
	for i := range n * n {
		c := color.F32ToU8(cf.Index(i))
		dst[i*3], dst[i*3+1], dst[i*3+2] = c.R, c.G, c.B
	}
	return buf, nil
}
