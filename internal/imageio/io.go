// Package imageio loads and saves raster files as paint layers.
package imageio

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/heal"
	"github.com/gogpu/heal/internal/color"
	"github.com/gogpu/heal/paint"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyImage is returned for images without pixels.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// DefaultJPEGQuality is used when Save is given a quality outside 1..100.
const DefaultJPEGQuality = 90

// Load decodes the image file at path. The format is detected from the
// content; PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return img, format, nil
}

// LoadLayer decodes path into a new layer in the given format, named after
// the file.
func LoadLayer(path string, format heal.Format) (*paint.Layer, error) {
	img, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	return ToLayer(img, filepath.Base(path), format)
}

// ToLayer converts img into a layer in the given format. Paletted images
// become indexed layers, which keep their own format and gain alpha only
// when the palette has a translucent entry.
func ToLayer(img image.Image, name string, format heal.Format) (*paint.Layer, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	var (
		l   *paint.Layer
		err error
	)
	if p, ok := img.(*image.Paletted); ok {
		l, err = paint.NewIndexedLayer(name, b.Dx(), b.Dy(), translucent(p.Palette))
	} else {
		l, err = paint.NewLayer(name, b.Dx(), b.Dy(), format)
	}
	if err != nil {
		return nil, err
	}
	format = l.Format()

	src := toNRGBA(img)
	w := b.Dx()

	// Decoded samples are sRGB encoded; linear targets go through the LUT.
	staging, from := heal.FormatRGBAPerceptual, color.U8ToF32
	if !format.IsPerceptual() {
		staging, from = heal.FormatRGBA, color.SRGBToLinearFast
	}

	row := make([]float32, w*4)
	for y := range b.Dy() {
		pix := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := range w {
			i := x * 4
			row[i] = from(pix[i])
			row[i+1] = from(pix[i+1])
			row[i+2] = from(pix[i+2])
			row[i+3] = color.U8ToF32(pix[i+3])
		}
		heal.ConvertPixels(l.Buffer().Row(y), format, row, staging, w)
	}
	return l, nil
}

// FromLayer renders l as a non-premultiplied 8-bit image. Layers without
// alpha come out opaque. Linear layers are encoded through the LUT.
func FromLayer(l *paint.Layer) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, l.Width(), l.Height()))

	staging, to := heal.FormatRGBAPerceptual, color.F32ToU8
	if !l.Format().IsPerceptual() {
		staging, to = heal.FormatRGBA, color.LinearToSRGBFast
	}

	buf := l.Region(l.Bounds(), staging)
	if buf == nil {
		return out
	}
	for y := range buf.Height() {
		row := buf.Row(y)
		dst := out.Pix[y*out.Stride:]
		for i := 0; i < len(row); i += 4 {
			dst[i] = to(row[i])
			dst[i+1] = to(row[i+1])
			dst[i+2] = to(row[i+2])
			dst[i+3] = color.F32ToU8(row[i+3])
		}
	}
	return out
}

func translucent(p stdcolor.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// toNRGBA returns img as an NRGBA image anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// Save encodes img to path. The encoder is chosen from the extension:
// .png, .jpg/.jpeg, .bmp, .tif/.tiff. quality applies to JPEG only.
func Save(path string, img image.Image, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, img, format, quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SaveLayer writes l to path, see Save.
func SaveLayer(path string, l *paint.Layer, quality int) error {
	return Save(path, FromLayer(l), quality)
}

// FormatFromPath maps a file extension to an encoder name.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpeg":
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}
