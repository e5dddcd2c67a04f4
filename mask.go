package heal

import "image"

// Mask is an 8-bit single-channel coverage raster.
//
// For healing, a value of 0 marks a boundary pixel whose difference is held
// fixed; any other value marks an interior pixel that takes part in relaxation.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	width = max(width, 0)
	height = max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			mask.data[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill sets every pixel of the mask to value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Region copies r out of the mask into a new mask of r's size.
// Pixels of r that fall outside the mask read as 0.
func (m *Mask) Region(r image.Rectangle) *Mask {
	out := NewMask(r.Dx(), r.Dy())
	in := r.Intersect(m.Bounds())
	if in.Empty() {
		return out
	}
	n := in.Dx()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		src := m.data[y*m.width+in.Min.X : y*m.width+in.Min.X+n]
		do := (y-r.Min.Y)*out.width + (in.Min.X - r.Min.X)
		copy(out.data[do:do+n], src)
	}
	return out
}

// Pad returns a copy of the mask surrounded by a zero border of n pixels.
func (m *Mask) Pad(n int) *Mask {
	out := NewMask(m.width+2*n, m.height+2*n)
	for y := range m.height {
		do := (y+n)*out.width + n
		copy(out.data[do:do+m.width], m.data[y*m.width:(y+1)*m.width])
	}
	return out
}
