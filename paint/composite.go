package paint

import (
	"image"

	"github.com/gogpu/heal"
	"github.com/gogpu/heal/internal/blend"
)

// Replace writes paint, an R'G'B'A patch, into the layer with its origin at
// p. Each pixel is interpolated towards the patch by
// mask × brushOpacity × imageOpacity, where the mask is read starting at
// maskOrigin. On layers with alpha the patch alpha replaces the layer
// alpha, so transparent paint erases; layers without alpha are painted in
// normal mode instead.
//
// It returns the rectangle of the layer that was touched.
func (l *Layer) Replace(paint *heal.Float32Buffer, p image.Point, mask *heal.Mask, maskOrigin image.Point, brushOpacity, imageOpacity float64) image.Rectangle {
	mode := blend.ModeReplace
	if !l.HasAlpha() {
		mode = blend.ModeNormal
	}
	return l.apply(paint, p, mask, maskOrigin, brushOpacity*imageOpacity, mode)
}

// Paste composites paint over the layer in normal mode, with the same
// masking rules as Replace.
func (l *Layer) Paste(paint *heal.Float32Buffer, p image.Point, mask *heal.Mask, maskOrigin image.Point, brushOpacity, imageOpacity float64) image.Rectangle {
	return l.apply(paint, p, mask, maskOrigin, brushOpacity*imageOpacity, blend.ModeNormal)
}

func (l *Layer) apply(paint *heal.Float32Buffer, p image.Point, mask *heal.Mask, maskOrigin image.Point, opacity float64, mode blend.Mode) image.Rectangle {
	if paint == nil || paint.Depth() != 4 {
		panic("paint: composite needs an R'G'B'A patch")
	}
	r := paint.Bounds().Add(p).Intersect(l.Bounds())
	if r.Empty() || opacity <= 0 {
		return image.Rectangle{}
	}

	cur := l.Region(r, heal.FormatRGBAPerceptual)
	for y := range r.Dy() {
		py := r.Min.Y - p.Y + y
		for x := range r.Dx() {
			px := r.Min.X - p.X + x

			cov := float32(opacity)
			if mask != nil {
				cov *= float32(mask.At(maskOrigin.X+px, maskOrigin.Y+py)) / 255
			}
			if cov <= 0 {
				continue
			}

			dst := cur.Pixel(x, y)
			c := blend.Blend(rgba(paint.Pixel(px, py)), rgba(dst), cov, mode)
			dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
		}
	}
	l.SetRegion(r.Min, cur, heal.FormatRGBAPerceptual)
	return r
}
