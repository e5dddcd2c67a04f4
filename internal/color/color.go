// Package color holds the transfer functions and luminance weights used to
// move pixels between linear and perceptual (sRGB-encoded) heal formats.
package color

// Space identifies how the color channels of a pixel are encoded.
type Space uint8

const (
	// Linear channels are proportional to light intensity.
	Linear Space = iota
	// Perceptual channels are encoded with the sRGB transfer curve (R'G'B', Y').
	Perceptual
)

// Rec. 709 luminance weights for linear RGB with sRGB primaries.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// RGBA is a float color with straight (non-premultiplied) alpha.
// Alpha is always linear.
type RGBA struct {
	R, G, B, A float32
}

// Gray returns the color with all three channels set to y.
func Gray(y, a float32) RGBA {
	return RGBA{R: y, G: y, B: y, A: a}
}

// Luminance returns the relative luminance of a linear color.
func (c RGBA) Luminance() float32 {
	return LumaR*c.R + LumaG*c.G + LumaB*c.B
}

// ToLinear decodes c from space s into linear light.
func (c RGBA) ToLinear(s Space) RGBA {
	if s == Linear {
		return c
	}
	return RGBA{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// FromLinear encodes a linear color into space s.
func (c RGBA) FromLinear(s Space) RGBA {
	if s == Linear {
		return c
	}
	return RGBA{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}
