package color

import "math"

// Lookup tables for 8-bit sRGB ↔ linear conversions, used when loading and
// saving 8-bit images from linear layers.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB

// sRGBToLinearLUT converts an sRGB byte to linear float32.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT converts linear light to an sRGB byte with 12-bit input precision.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = srgbToLinear64(float64(i) / 255.0)
	}
	for i := range 4096 {
		linearToSRGBLUT[i] = quantize(linearToSRGB64(float64(i) / 4095.0))
	}
}

// SRGBToLinearFast converts an sRGB byte to linear float32.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear light to an sRGB byte. Input is clamped to [0,1].
//
// Example:
//
//	s := LinearToSRGBFast(0.5) // 188 (not 128!)
func LinearToSRGBFast(l float32) uint8 {
	if !(l > 0) {
		return linearToSRGBLUT[0]
	}
	if l >= 1 {
		return linearToSRGBLUT[4095]
	}
	return linearToSRGBLUT[int(l*4095.0+0.5)]
}

func srgbToLinear64(s float64) float32 {
	if s <= 0.04045 {
		return float32(s / 12.92)
	}
	return float32(math.Pow((s+0.055)/1.055, 2.4))
}

func linearToSRGB64(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func quantize(v float64) uint8 {
	i := int(v*255.0 + 0.5)
	//nolint:gosec // G115: clamped to [0,255]
	return uint8(max(0, min(255, i)))
}
