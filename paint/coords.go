package paint

import "math"

// Coords is a pointer sample of a stroke.
type Coords struct {
	X, Y float64

	// Pressure in [0,1]. Mice report 1.
	Pressure float64
}

// At returns full-pressure coordinates.
func At(x, y float64) Coords {
	return Coords{X: x, Y: y, Pressure: 1}
}

func (c Coords) floor() (int, int) {
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

func (c Coords) distance(o Coords) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}
