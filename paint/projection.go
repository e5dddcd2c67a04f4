package paint

import (
	"image"

	"github.com/gogpu/heal"
	"github.com/gogpu/heal/internal/blend"
	"github.com/gogpu/heal/internal/color"
)

// Projection is the composite of all layers of an image, sampled on demand.
// Layers are combined in normal mode in perceptual space.
type Projection struct {
	image *Image
}

// Bounds returns the canvas extent.
func (p *Projection) Bounds() image.Rectangle { return p.image.Bounds() }

// Format returns heal.FormatRGBAPerceptual.
func (p *Projection) Format() heal.Format { return heal.FormatRGBAPerceptual }

// Region composites r of the canvas and returns it in format f.
func (p *Projection) Region(r image.Rectangle, f heal.Format) *heal.Float32Buffer {
	if r.Empty() || !f.IsValid() {
		return nil
	}
	acc, err := heal.NewBuffer[float32](r.Dx(), r.Dy(), 4)
	if err != nil {
		return nil
	}
	canvas := r.Intersect(p.Bounds())

	for _, l := range p.image.layers {
		lr := canvas.Intersect(l.Bounds().Add(l.offset))
		if lr.Empty() {
			continue
		}
		patch := l.Region(lr.Sub(l.offset), heal.FormatRGBAPerceptual)
		for y := range lr.Dy() {
			for x := range lr.Dx() {
				dst := acc.Pixel(lr.Min.X-r.Min.X+x, lr.Min.Y-r.Min.Y+y)
				src := patch.Pixel(x, y)
				c := blend.Blend(rgba(src), rgba(dst), 1, blend.ModeNormal)
				dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
			}
		}
	}

	if f == heal.FormatRGBAPerceptual {
		return acc
	}
	return heal.Convert(acc, heal.FormatRGBAPerceptual, f)
}

// PixelAt returns the composite pixel at (x, y), or nil outside the canvas.
func (p *Projection) PixelAt(x, y int) []float32 {
	if !image.Pt(x, y).In(p.Bounds()) {
		return nil
	}
	return p.Region(image.Rect(x, y, x+1, y+1), heal.FormatRGBAPerceptual).Pix()
}

// Flatten renders the whole canvas into a detached layer.
func (p *Projection) Flatten() *Layer {
	l, err := NewLayer("projection", p.image.width, p.image.height, heal.FormatRGBAPerceptual)
	if err != nil {
		return nil
	}
	l.image = p.image
	l.SetRegion(image.Point{}, p.Region(p.Bounds(), heal.FormatRGBAPerceptual), heal.FormatRGBAPerceptual)
	return l
}

func rgba(p []float32) color.RGBA {
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}
