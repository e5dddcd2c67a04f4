package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// Values outside [0,1] are mirrored around zero so that healed samples that
// overshoot the gamut keep their sign.
func SRGBToLinear(s float32) float32 {
	if s < 0 {
		return -SRGBToLinear(-s)
	}
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// U8ToF32 maps an 8-bit sample [0,255] to [0,1].
func U8ToF32(v uint8) float32 {
	return float32(v) / 255.0
}

// F32ToU8 maps a float sample to 8 bits, clamping to [0,1] and rounding.
func F32ToU8(v float32) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
