package paint

// Repeat selects how the fade position wraps past the fade length.
type Repeat uint8

const (
	// RepeatNone holds the fade at its end after one length.
	RepeatNone Repeat = iota
	// RepeatSawtooth restarts the fade every length.
	RepeatSawtooth
	// RepeatTriangular runs the fade forward and back.
	RepeatTriangular
)

// FadeUnit is the unit of FadeOptions.Length.
type FadeUnit uint8

const (
	// FadePixels measures the length in pixels.
	FadePixels FadeUnit = iota
	// FadePercent measures the length in percent of the larger image side.
	FadePercent
)

// FadeOptions configure the fade input of the paint dynamics.
type FadeOptions struct {
	Length  float64
	Unit    FadeUnit
	Repeat  Repeat
	Reverse bool
}

// Point returns the fade position in [0,1] after dist pixels of stroke on an
// image of the given size. A non-positive length counts as fully faded.
func (o FadeOptions) Point(imageWidth, imageHeight int, dist float64) float64 {
	length := o.Length
	if o.Unit == FadePercent {
		length = float64(max(imageWidth, imageHeight)) * o.Length / 100
	}

	pos := 1.0
	if length > 0 {
		pos = dist / length
	}

	if o.Repeat == RepeatNone && pos >= 1 {
		pos = 1 - 0.0000001
	}

	whole := int(pos)
	if whole&1 == 1 && o.Repeat != RepeatSawtooth {
		pos = 1 - (pos - float64(whole))
	} else {
		pos -= float64(whole)
	}

	if o.Reverse {
		return 1 - pos
	}
	return pos
}
