package paint

import (
	"image"
	stdcolor "image/color"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/heal"
)

// Brush supplies the coverage mask of a dab.
type Brush interface {
	// Size returns the mask dimensions at the given scale.
	Size(scale float64) (width, height int)

	// Mask returns the coverage raster at the given scale. The result has the
	// dimensions reported by Size and must not be modified.
	Mask(scale float64) *heal.Mask
}

// GeneratedBrush is a round brush with a hard core and a smooth falloff.
type GeneratedBrush struct {
	radius   float64
	hardness float64

	mu    sync.Mutex
	scale float64
	mask  *heal.Mask
}

// NewGeneratedBrush creates a round brush. hardness in [0,1] is the fraction
// of the radius painted at full coverage.
func NewGeneratedBrush(radius, hardness float64) *GeneratedBrush {
	return &GeneratedBrush{
		radius:   max(radius, 0.5),
		hardness: min(max(hardness, 0), 1),
	}
}

// Radius returns the unscaled radius.
func (b *GeneratedBrush) Radius() float64 { return b.radius }

// Hardness returns the hardness.
func (b *GeneratedBrush) Hardness() float64 { return b.hardness }

// Size returns the diameter in pixels, at least 1.
func (b *GeneratedBrush) Size(scale float64) (int, int) {
	d := max(1, int(math.Ceil(2*b.radius*scale)))
	return d, d
}

// Mask rasterizes the disc with anti-aliased edges and applies the falloff.
func (b *GeneratedBrush) Mask(scale float64) *heal.Mask {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mask != nil && b.scale == scale {
		return b.mask
	}

	d, _ := b.Size(scale)
	r := float32(b.radius * scale)
	c := float32(d) / 2

	z := vector.NewRasterizer(d, d)
	addCircle(z, c, c, r)
	cov := image.NewAlpha(image.Rect(0, 0, d, d))
	z.Draw(cov, cov.Bounds(), image.NewUniform(stdcolor.Alpha{A: 255}), image.Point{})

	m := heal.NewMask(d, d)
	for y := range d {
		for x := range d {
			dx := float64(x) + 0.5 - float64(c)
			dy := float64(y) + 0.5 - float64(c)
			f := b.falloff(math.Hypot(dx, dy) / float64(r))
			m.Set(x, y, uint8(float64(cov.AlphaAt(x, y).A)*f+0.5))
		}
	}

	b.scale, b.mask = scale, m
	return m
}

// falloff maps a normalized distance to a coverage factor.
func (b *GeneratedBrush) falloff(u float64) float64 {
	if u <= b.hardness {
		return 1
	}
	if u >= 1 {
		return 0
	}
	t := (u - b.hardness) / (1 - b.hardness)
	return 1 - t*t*(3-2*t)
}

// addCircle appends a circle built from four cubic Bézier arcs.
func addCircle(z *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	z.MoveTo(cx, cy-radius)
	z.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	z.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	z.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	z.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	z.ClosePath()
}

// ImageBrush takes its coverage from an image. Alpha images and images with
// transparency use their alpha; fully opaque colour or gray images use
// inverted gray so that dark pixels paint.
type ImageBrush struct {
	src *image.Alpha

	mu    sync.Mutex
	scale float64
	mask  *heal.Mask
}

// NewImageBrush creates a brush from img.
func NewImageBrush(img image.Image) *ImageBrush {
	b := img.Bounds()
	cov := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))

	m := img.ColorModel()
	opaque := m != stdcolor.AlphaModel && m != stdcolor.Alpha16Model
	for y := b.Min.Y; y < b.Max.Y && opaque; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				opaque = false
				break
			}
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			var v uint8
			if opaque {
				v = 255 - stdcolor.GrayModel.Convert(c).(stdcolor.Gray).Y
			} else {
				_, _, _, a := c.RGBA()
				v = uint8(a >> 8)
			}
			cov.SetAlpha(x-b.Min.X, y-b.Min.Y, stdcolor.Alpha{A: v})
		}
	}
	return &ImageBrush{src: cov}
}

// Size returns the scaled image dimensions, at least 1×1.
func (b *ImageBrush) Size(scale float64) (int, int) {
	s := b.src.Bounds().Size()
	w := max(1, int(math.Round(float64(s.X)*scale)))
	h := max(1, int(math.Round(float64(s.Y)*scale)))
	return w, h
}

// Mask returns the coverage, resampled with Catmull-Rom when scaled.
func (b *ImageBrush) Mask(scale float64) *heal.Mask {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mask != nil && b.scale == scale {
		return b.mask
	}

	w, h := b.Size(scale)
	cov := b.src
	if cov.Bounds().Dx() != w || cov.Bounds().Dy() != h {
		cov = image.NewAlpha(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(cov, cov.Bounds(), b.src, b.src.Bounds(), xdraw.Src, nil)
	}

	b.scale, b.mask = scale, heal.NewMaskFromAlpha(cov)
	return b.mask
}
