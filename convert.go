package heal

import (
	"fmt"

	"github.com/gogpu/heal/internal/color"
)

// ConvertPixels converts n pixels from src in format from into dst in format to.
//
// Gray is expanded by replication; color is reduced to gray through linear
// luminance. A missing alpha channel reads as 1 and a dropped one is
// discarded. Transfer curves are applied as needed. dst and src must not
// overlap unless the formats are equal.
func ConvertPixels(dst []float32, to Format, src []float32, from Format, n int) {
	if !to.IsValid() || !from.IsValid() {
		panic(fmt.Sprintf("heal: convert %v to %v", from, to))
	}
	tc, fc := to.Channels(), from.Channels()
	if len(dst) < n*tc || len(src) < n*fc {
		panic("heal: convert: slice too short")
	}
	if to == from {
		copy(dst[:n*tc], src[:n*fc])
		return
	}

	fromSpace, toSpace := space(from), space(to)
	sameSpace := fromSpace == toSpace

	for i := range n {
		c := readPixel(src[i*fc:], from)
		if !sameSpace || (to.IsGrayscale() && !from.IsGrayscale()) {
			c = c.ToLinear(fromSpace)
			if to.IsGrayscale() && !from.IsGrayscale() {
				y := c.Luminance()
				c = color.Gray(y, c.A)
			}
			c = c.FromLinear(toSpace)
		}
		writePixel(dst[i*tc:], to, c)
	}
}

// Convert returns a copy of src, laid out in format from, converted to format to.
func Convert(src *Float32Buffer, from, to Format) *Float32Buffer {
	if src.depth != from.Channels() {
		panic(fmt.Sprintf("heal: buffer depth %d does not match %v", src.depth, from))
	}
	out := mustBuffer[float32](src.width, src.height, to.Channels())
	for y := range src.height {
		ConvertPixels(out.Row(y), to, src.Row(y), from, src.width)
	}
	return out
}

func space(f Format) color.Space {
	if f.IsPerceptual() {
		return color.Perceptual
	}
	return color.Linear
}

func readPixel(p []float32, f Format) color.RGBA {
	switch f.Channels() {
	case 1:
		return color.Gray(p[0], 1)
	case 2:
		return color.Gray(p[0], p[1])
	case 3:
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: 1}
	default:
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
}

func writePixel(p []float32, f Format, c color.RGBA) {
	switch f.Channels() {
	case 1:
		p[0] = c.R
	case 2:
		p[0], p[1] = c.R, c.A
	case 3:
		p[0], p[1], p[2] = c.R, c.G, c.B
	default:
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
}
