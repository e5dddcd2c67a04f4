package paint

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/heal"
)

// ErrInvalidFormat is returned when a layer is created with an unknown format.
var ErrInvalidFormat = errors.New("paint: invalid pixel format")

// Type is the base type of a layer.
type Type uint8

const (
	// TypeRGB layers store color pixels.
	TypeRGB Type = iota
	// TypeGray layers store grayscale pixels.
	TypeGray
	// TypeIndexed layers are palette based. Their pixels are kept expanded
	// to R'G'B'(A) but the heal tool refuses to paint on them.
	TypeIndexed
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeRGB:
		return "RGB"
	case TypeGray:
		return "Gray"
	case TypeIndexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// Layer is a drawable: a pixel buffer in a native format placed at an
// offset inside its image.
type Layer struct {
	name   string
	typ    Type
	format heal.Format
	buf    *heal.Float32Buffer
	offset image.Point
	image  *Image
}

// NewLayer creates a transparent (or black, without alpha) layer. The layer
// type follows the format: grayscale formats give TypeGray, color ones TypeRGB.
func NewLayer(name string, width, height int, format heal.Format) (*Layer, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	buf, err := heal.NewBuffer[float32](width, height, format.Channels())
	if err != nil {
		return nil, fmt.Errorf("paint: new layer %q: %w", name, err)
	}
	typ := TypeRGB
	if format.IsGrayscale() {
		typ = TypeGray
	}
	return &Layer{name: name, typ: typ, format: format, buf: buf}, nil
}

// NewIndexedLayer creates an indexed layer with expanded R'G'B'(A) storage.
func NewIndexedLayer(name string, width, height int, hasAlpha bool) (*Layer, error) {
	f := heal.FormatRGBPerceptual
	if hasAlpha {
		f = heal.FormatRGBAPerceptual
	}
	l, err := NewLayer(name, width, height, f)
	if err != nil {
		return nil, err
	}
	l.typ = TypeIndexed
	return l, nil
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Type returns the layer base type.
func (l *Layer) Type() Type { return l.typ }

// IsIndexed reports whether the layer is palette based.
func (l *Layer) IsIndexed() bool { return l.typ == TypeIndexed }

// Format returns the native pixel format.
func (l *Layer) Format() heal.Format { return l.format }

// HasAlpha reports whether the layer stores an alpha channel.
func (l *Layer) HasAlpha() bool { return l.format.HasAlpha() }

// Width returns the layer width.
func (l *Layer) Width() int { return l.buf.Width() }

// Height returns the layer height.
func (l *Layer) Height() int { return l.buf.Height() }

// Bounds returns the layer extent in layer coordinates.
func (l *Layer) Bounds() image.Rectangle { return l.buf.Bounds() }

// Offset returns the layer position inside its image.
func (l *Layer) Offset() image.Point { return l.offset }

// SetOffset moves the layer inside its image.
func (l *Layer) SetOffset(p image.Point) { l.offset = p }

// Image returns the image the layer belongs to, or nil.
func (l *Layer) Image() *Image { return l.image }

// Buffer returns the native pixel storage.
func (l *Layer) Buffer() *heal.Float32Buffer { return l.buf }

// PixelAt returns the native pixel at (x, y), or nil outside the layer.
func (l *Layer) PixelAt(x, y int) []float32 { return l.buf.Pixel(x, y) }

// Fill sets every pixel to the given native channel values.
func (l *Layer) Fill(values ...float32) { l.buf.Fill(values...) }

// Region returns a copy of r converted to f. Pixels outside the layer are 0.
// It returns nil for an empty rectangle or an invalid format.
func (l *Layer) Region(r image.Rectangle, f heal.Format) *heal.Float32Buffer {
	if r.Empty() || !f.IsValid() {
		return nil
	}
	out, err := heal.NewBuffer[float32](r.Dx(), r.Dy(), f.Channels())
	if err != nil {
		return nil
	}
	in := r.Intersect(l.Bounds())
	if in.Empty() {
		return out
	}
	oc, lc := f.Channels(), l.format.Channels()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		dst := out.Row(y - r.Min.Y)[(in.Min.X-r.Min.X)*oc:]
		src := l.buf.Row(y)[in.Min.X*lc:]
		heal.ConvertPixels(dst, f, src, l.format, in.Dx())
	}
	return out
}

// SetRegion writes src, laid out in format f, into the layer with src's
// origin at p. Pixels falling outside the layer are dropped.
func (l *Layer) SetRegion(p image.Point, src *heal.Float32Buffer, f heal.Format) {
	if src == nil || src.Depth() != f.Channels() {
		panic("paint: SetRegion buffer does not match its format")
	}
	r := src.Bounds().Add(p)
	in := r.Intersect(l.Bounds())
	if in.Empty() {
		return
	}
	lc, sc := l.format.Channels(), f.Channels()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		dst := l.buf.Row(y)[in.Min.X*lc:]
		row := src.Row(y - p.Y)[(in.Min.X-p.X)*sc:]
		heal.ConvertPixels(dst, l.format, row, f, in.Dx())
	}
}

// Clone returns a detached deep copy of the layer, used as the unmodified
// original while a stroke paints on the layer itself.
func (l *Layer) Clone() *Layer {
	return &Layer{
		name:   l.name,
		typ:    l.typ,
		format: l.format,
		buf:    l.buf.Clone(),
		offset: l.offset,
		image:  l.image,
	}
}
