package image

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		format Format
		want   error
	}{
		{"rgb", 4, 3, FormatRGB8, nil},
		{"gray", 1, 1, FormatGray8, nil},
		{"zero width", 0, 3, FormatRGB8, ErrInvalidDimensions},
		{"negative height", 3, -1, FormatGray8, ErrInvalidDimensions},
		{"bad format", 2, 2, formatCount, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.w, tt.h, tt.format)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewImageBuf() error = %v, want %v", err, tt.want)
			}
			if err != nil {
				return
			}
			if got := len(buf.Data()); got != tt.w*tt.h*tt.format.BytesPerPixel() {
				t.Errorf("len(Data()) = %d, want %d", got, tt.w*tt.h*tt.format.BytesPerPixel())
			}
		})
	}
}

func TestImageBuf_Accessors(t *testing.T) {
	rgb, _ := NewImageBuf(3, 2, FormatRGB8)
	if err := rgb.SetRGB(2, 1, [3]byte{10, 20, 30}); err != nil {
		t.Fatalf("SetRGB() error = %v", err)
	}
	if got := rgb.RGB(2, 1); got != [3]byte{10, 20, 30} {
		t.Errorf("RGB(2, 1) = %v, want [10 20 30]", got)
	}
	if off := rgb.PixelOffset(2, 1); off != 1*9+2*3 {
		t.Errorf("PixelOffset(2, 1) = %d, want 15", off)
	}
	if err := rgb.SetRGB(3, 0, [3]byte{}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRGB(3, 0) error = %v, want ErrOutOfBounds", err)
	}
	if err := rgb.SetGray(0, 0, 1); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("SetGray on RGB8 error = %v, want ErrFormatMismatch", err)
	}

	gray, _ := NewImageBuf(2, 2, FormatGray8)
	if err := gray.SetGray(1, 1, 200); err != nil {
		t.Fatalf("SetGray() error = %v", err)
	}
	if got := gray.Data()[gray.PixelOffset(1, 1)]; got != 200 {
		t.Errorf("pixel (1, 1) = %d, want 200", got)
	}
	if err := gray.SetGray(-1, 0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetGray(-1, 0) error = %v, want ErrOutOfBounds", err)
	}
}

func testImages() (*ImageBuf, *ImageBuf) {
	rgb, _ := NewImageBuf(4, 3, FormatRGB8)
	gray, _ := NewImageBuf(4, 3, FormatGray8)
	for y := range 3 {
		for x := range 4 {
			_ = rgb.SetRGB(x, y, [3]byte{byte(x * 60), byte(y * 100), byte(x*y + 7)})
			_ = gray.SetGray(x, y, byte(x*50+y))
		}
	}
	return rgb, gray
}

func TestEncodePPM(t *testing.T) {
	rgb, gray := testImages()

	var buf bytes.Buffer
	if err := rgb.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM() error = %v", err)
	}
	header := "P6\n4 3\n255\n"
	if got := buf.String()[:len(header)]; got != header {
		t.Errorf("header = %q, want %q", got, header)
	}
	if !bytes.Equal(buf.Bytes()[len(header):], rgb.Data()) {
		t.Error("PPM body does not match buffer data")
	}

	buf.Reset()
	if err := gray.EncodePPM(&buf); err != nil {
		t.Fatalf("EncodePPM() error = %v", err)
	}
	header = "P5\n4 3\n255\n"
	if got := buf.String()[:len(header)]; got != header {
		t.Errorf("header = %q, want %q", got, header)
	}
	if buf.Len() != len(header)+12 {
		t.Errorf("PGM size = %d, want %d", buf.Len(), len(header)+12)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	decoders := map[FileFormat]func(*bytes.Buffer) (image.Image, error){
		FilePPM:  func(b *bytes.Buffer) (image.Image, error) { return netpbm.Decode(b, &netpbm.DecodeOptions{Target: netpbm.PNM, Exact: true}) },
		FilePNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FileTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
		FileBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
	}

	rgb, gray := testImages()
	for ff, decode := range decoders {
		for _, src := range []*ImageBuf{rgb, gray} {
			t.Run(ff.String()+"/"+src.Format().String(), func(t *testing.T) {
				var buf bytes.Buffer
				if err := src.Encode(&buf, ff); err != nil {
					t.Fatalf("Encode() error = %v", err)
				}
				img, err := decode(&buf)
				if err != nil {
					t.Fatalf("decode error = %v", err)
				}
				for y := range 3 {
					for x := range 4 {
						r, g, b, _ := img.At(x, y).RGBA()
						got := [3]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8)}
						want := src.RGB(x, y)
						if src.Format() == FormatGray8 {
							v := src.Data()[src.PixelOffset(x, y)]
							want = [3]byte{v, v, v}
						}
						if got != want {
							t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
						}
					}
				}
			})
		}
	}
}

func TestEncode_Unsupported(t *testing.T) {
	rgb, _ := testImages()
	if err := rgb.Encode(&bytes.Buffer{}, FileFormat(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(99) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSave(t *testing.T) {
	rgb, _ := testImages()
	path := filepath.Join(t.TempDir(), "out.ppm")

	if err := rgb.Save(path, FilePPM); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P6\n")) {
		t.Errorf("saved file starts with %q, want P6 header", data[:3])
	}

	bad := filepath.Join(t.TempDir(), "missing", "out.ppm")
	if err := rgb.Save(bad, FilePPM); err == nil {
		t.Error("Save() into a missing directory succeeded, want error")
	}
}

func TestParseFileFormat(t *testing.T) {
	tests := []struct {
		in   string
		want FileFormat
		ext  string
	}{
		{"ppm", FilePPM, ".ppm"},
		{".PGM", FilePPM, ".ppm"},
		{"png", FilePNG, ".png"},
		{"tif", FileTIFF, ".tiff"},
		{"bmp", FileBMP, ".bmp"},
	}
	for _, tt := range tests {
		got, err := ParseFileFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFileFormat(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
		if ext := got.Ext(FormatRGB8); ext != tt.ext {
			t.Errorf("%v.Ext(RGB8) = %q, want %q", got, ext, tt.ext)
		}
	}
	if FilePPM.Ext(FormatGray8) != ".pgm" {
		t.Errorf("FilePPM.Ext(Gray8) = %q, want .pgm", FilePPM.Ext(FormatGray8))
	}
	if _, err := ParseFileFormat("jpeg"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFileFormat(jpeg) error = %v, want ErrUnsupportedFormat", err)
	}
}
