package paint

import "github.com/gogpu/heal"

// Align selects how the source point follows the brush.
type Align uint8

const (
	// AlignNone restarts from the original source point on every stroke.
	AlignNone Align = iota
	// AlignAligned keeps the offset of the first stroke for all later strokes.
	AlignAligned
	// AlignRegistered samples the source at the brush position.
	AlignRegistered
	// AlignFixed always samples at the source point.
	AlignFixed
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignAligned:
		return "aligned"
	case AlignRegistered:
		return "registered"
	case AlignFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Options configure a heal stroke.
type Options struct {
	// Opacity is the image opacity in [0,1].
	Opacity float64

	// Mode is the brush application mode of the final composite.
	Mode ApplicationMode

	// BrushScale scales the brush.
	BrushScale float64

	// Align controls source tracking.
	Align Align

	// SampleMerged samples the flattened image instead of the source layer.
	SampleMerged bool

	Fade     FadeOptions
	Dynamics Dynamics

	// Solver options passed to heal.New. Nil uses the defaults.
	Solver []heal.Option
}

// DefaultOptions returns the heal tool defaults.
func DefaultOptions() Options {
	return Options{
		Opacity:    1,
		Mode:       BrushSoft,
		BrushScale: 1,
		Align:      AlignNone,
		Dynamics:   FixedDynamics{},
	}
}
