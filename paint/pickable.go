package paint

import (
	"image"

	"github.com/gogpu/heal"
)

// Pickable is a pixel source the heal tool can sample from.
//
// Layer and Projection implement it.
type Pickable interface {
	// Bounds returns the pixel extent, with its origin at (0, 0).
	Bounds() image.Rectangle

	// Format returns the native storage format.
	Format() heal.Format

	// Region returns a copy of r converted to format f. Pixels of r that
	// fall outside Bounds are transparent black.
	Region(r image.Rectangle, f heal.Format) *heal.Float32Buffer

	// PixelAt returns the pixel at (x, y) in the native format, or nil
	// outside Bounds.
	PixelAt(x, y int) []float32
}

var (
	_ Pickable = (*Layer)(nil)
	_ Pickable = (*Projection)(nil)
)
