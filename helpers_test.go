package heal

import "math"

// Test helper functions shared across heal tests.

// newFilledBuffer creates a float32 buffer with every sample set to v.
func newFilledBuffer(w, h, depth int, v float32) *Float32Buffer {
	b := mustBuffer[float32](w, h, depth)
	for i := range b.pix {
		b.pix[i] = v
	}
	return b
}

// newPatternBuffer creates a buffer whose samples vary smoothly with position.
func newPatternBuffer(w, h, depth int) *Float32Buffer {
	b := mustBuffer[float32](w, h, depth)
	for y := range h {
		for x := range w {
			px := b.Pixel(x, y)
			for k := range depth {
				px[k] = float32(0.5 + 0.4*math.Sin(float64(x*(k+1))*0.7+float64(y)*0.3))
			}
		}
	}
	return b
}

// newInteriorMask creates a mask that is 255 everywhere except a one-pixel zero border.
func newInteriorMask(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, 255)
		}
	}
	return m
}

// approxEqual compares two floats with tolerance.
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
