package paint

import (
	"math"

	"github.com/gogpu/heal"
)

// ApplicationMode selects how brush coverage is turned into a paint mask.
type ApplicationMode uint8

const (
	// BrushSoft keeps the brush coverage as is.
	BrushSoft ApplicationMode = iota
	// BrushHard paints every covered pixel at full strength.
	BrushHard
	// BrushPressure remaps coverage by the dynamic force.
	BrushPressure
)

// String returns the mode name.
func (m ApplicationMode) String() string {
	switch m {
	case BrushSoft:
		return "soft"
	case BrushHard:
		return "hard"
	case BrushPressure:
		return "pressure"
	default:
		return "unknown"
	}
}

// BrushMask returns the dab mask of b at c, one pixel larger than the brush
// on every side. force is the dynamic value used by BrushPressure.
func BrushMask(b Brush, c Coords, scale float64, mode ApplicationMode, force float64) *heal.Mask {
	if scale <= 0 {
		return nil
	}
	m := b.Mask(scale)
	switch mode {
	case BrushHard:
		return solidify(m, c)
	case BrushPressure:
		return pressurize(m, force)
	default:
		return m.Pad(1)
	}
}

// solidify makes every covered pixel fully opaque. Even-sized masks shift
// by one pixel when the pointer is past the pixel centre.
func solidify(m *heal.Mask, c Coords) *heal.Mask {
	w, h := m.Width(), m.Height()
	dx, dy := 0, 0
	if w%2 == 0 && fracFromZero(c.X, w) >= 0.5 {
		dx = 1
	}
	if h%2 == 0 && fracFromZero(c.Y, h) >= 0.5 {
		dy = 1
	}

	out := heal.NewMask(w+2, h+2)
	for y := range h {
		for x := range w {
			if m.At(x, y) != 0 {
				out.Set(x+1+dx, y+1+dy, 255)
			}
		}
	}
	return out
}

// fracFromZero returns the fractional part of v after moving it into the
// non-negative range by whole periods.
func fracFromZero(v float64, period int) float64 {
	for v < 0 {
		v += float64(period)
	}
	return v - math.Floor(v)
}

// pressurize remaps coverage through a linear ramp of slope 2×pressure.
// A pressure of 0.5 leaves the mask unchanged.
func pressurize(m *heal.Mask, pressure float64) *heal.Mask {
	out := m.Pad(1)
	if int(pressure*100+0.5) == 50 {
		return out
	}

	var table [256]uint8
	step := 2 * pressure
	k := 0.0
	for i := range table {
		if k > 255 {
			table[i] = 255
		} else {
			table[i] = uint8(k)
		}
		k += step
	}

	data := out.Data()
	for i, v := range data {
		data[i] = table[v]
	}
	return out
}

// maskOrigin returns the offset into a dab mask of the first pixel that lies
// inside the drawable.
func maskOrigin(m *heal.Mask, c Coords) (int, int) {
	fx, fy := c.floor()
	x := fx - m.Width()>>1
	y := fy - m.Height()>>1
	return max(0, -x), max(0, -y)
}
