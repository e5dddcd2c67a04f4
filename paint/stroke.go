package paint

import (
	"image"

	"github.com/gogpu/heal"
)

// SkipReason explains why a motion event painted nothing.
type SkipReason uint8

const (
	// SkipNone means the dab was painted.
	SkipNone SkipReason = iota
	// SkipTransparent means the dynamic opacity was 0.
	SkipTransparent
	// SkipOutside means the dab or its source lies outside the drawable.
	SkipOutside
	// SkipSourceEdge means the source rectangle was clipped by the edge of
	// the source, so it no longer matches the paint area.
	SkipSourceEdge
)

// String returns a short description of the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipTransparent:
		return "transparent"
	case SkipOutside:
		return "outside"
	case SkipSourceEdge:
		return "source edge"
	default:
		return "unknown"
	}
}

// MotionResult reports what a motion event did.
type MotionResult struct {
	// Skipped is true when nothing was written.
	Skipped bool
	Reason  SkipReason

	// Area is the paint area of the dab in layer coordinates.
	Area image.Rectangle

	// Source is the matching source rectangle, clipped to the source.
	Source image.Rectangle

	Stats heal.Stats
}

// Stroke heals along a sequence of pointer events on one layer.
//
// A stroke sequence is SetSource (at least once), then Start, any number of
// Motion calls, and Finish. Strokes can be repeated; the source point
// carries over according to the alignment mode.
type Stroke struct {
	dest   *Layer
	brush  Brush
	opts   Options
	healer *heal.Healer

	src      Pickable
	srcX     int
	srcY     int
	origX    int
	origY    int
	offset   image.Point
	first    bool
	started  bool
	orig     *Layer // dest before the stroke
	origProj *Layer // projection before the stroke

	last      Coords
	hasLast   bool
	pixelDist float64
}

// NewStroke prepares a heal stroke on dest.
func NewStroke(dest *Layer, brush Brush, opts Options) (*Stroke, error) {
	if dest == nil {
		return nil, ErrNilLayer
	}
	if brush == nil {
		return nil, ErrNilBrush
	}
	if opts.Dynamics == nil {
		opts.Dynamics = FixedDynamics{}
	}
	if opts.BrushScale <= 0 {
		opts.BrushScale = 1
	}
	opts.Opacity = clamp01(opts.Opacity)

	return &Stroke{
		dest:   dest,
		brush:  brush,
		opts:   opts,
		healer: heal.New(opts.Solver...),
		first:  true,
	}, nil
}

// SetSource picks the source drawable and point, like a ctrl-click with the
// heal tool. src may be nil to keep the current drawable. It may be called
// during a stroke to drag the source point.
func (s *Stroke) SetSource(src Pickable, c Coords) {
	if src != nil {
		s.src = src
	}
	s.srcX, s.srcY = int(c.X), int(c.Y)
	s.first = true
}

// Source returns the current source point.
func (s *Stroke) Source() image.Point {
	return image.Pt(s.srcX, s.srcY)
}

// Start begins a stroke at c.
//
// It returns ErrIndexed for indexed destinations and ErrNoSource when no
// source has been set.
func (s *Stroke) Start(c Coords) error {
	if s.dest.IsIndexed() {
		return ErrIndexed
	}
	if s.src == nil {
		return ErrNoSource
	}

	if s.opts.Align == AlignNone {
		s.origX, s.origY = s.srcX, s.srcY
		s.first = true
	}

	s.orig = nil
	s.origProj = nil
	if s.readsOriginal() {
		if s.opts.SampleMerged {
			if im := s.dest.Image(); im != nil {
				s.origProj = im.Projection().Flatten()
			}
		} else {
			s.orig = s.dest.Clone()
		}
	}

	s.started = true
	s.hasLast = false
	s.pixelDist = 0

	heal.Logger().Info("heal: stroke started",
		"layer", s.dest.Name(),
		"x", c.X, "y", c.Y,
		"source_x", s.srcX, "source_y", s.srcY,
		"align", s.opts.Align.String(),
	)
	return nil
}

// readsOriginal reports whether the source overlaps what the stroke paints,
// in which case the source must be read from a snapshot.
func (s *Stroke) readsOriginal() bool {
	if s.opts.SampleMerged {
		return s.sourceImage() != nil && s.sourceImage() == s.dest.Image()
	}
	if l, ok := s.src.(*Layer); ok {
		return l == s.dest
	}
	return false
}

func (s *Stroke) sourceImage() *Image {
	switch src := s.src.(type) {
	case *Layer:
		return src.Image()
	case *Projection:
		return src.image
	}
	return nil
}

// Motion paints one dab at c.
//
// A dab whose source area is clipped by the source edge is skipped without
// error, as is a dab with zero opacity. The only error is ErrNotStarted.
func (s *Stroke) Motion(c Coords) (MotionResult, error) {
	if !s.started {
		return MotionResult{}, ErrNotStarted
	}

	if s.hasLast {
		s.pixelDist += c.distance(s.last)
	}
	s.last, s.hasLast = c, true

	s.track(c)

	res := s.dab(c)
	if res.Skipped {
		heal.Logger().Debug("heal: dab skipped",
			"x", c.X, "y", c.Y,
			"reason", res.Reason.String(),
		)
	}
	return res, nil
}

// track updates the source point for a motion to c.
func (s *Stroke) track(c Coords) {
	destX, destY := int(c.X), int(c.Y)

	switch {
	case s.opts.Align == AlignRegistered:
		s.offset = image.Point{}
	case s.opts.Align == AlignFixed:
		s.offset = image.Pt(s.srcX-destX, s.srcY-destY)
	case s.first:
		s.offset = image.Pt(s.srcX-destX, s.srcY-destY)
		s.first = false
	}

	s.srcX = destX + s.offset.X
	s.srcY = destY + s.offset.Y
}

func (s *Stroke) dab(c Coords) MotionResult {
	w, h := s.imageSize()
	fade := s.opts.Fade.Point(w, h, s.pixelDist)

	opacity := s.opts.Dynamics.Opacity(c, fade)
	if opacity == 0 {
		return MotionResult{Skipped: true, Reason: SkipTransparent}
	}

	pick, srcOff := s.source()

	area := s.paintArea(c)
	if area.Empty() {
		return MotionResult{Skipped: true, Reason: SkipOutside}
	}

	srcRect := area.Add(srcOff).Intersect(pick.Bounds())
	if srcRect.Empty() {
		return MotionResult{Skipped: true, Reason: SkipOutside}
	}

	hardness := s.opts.Dynamics.Hardness(c, fade)
	mask := BrushMask(s.brush, c, s.opts.BrushScale, BrushHard, hardness)
	if mask == nil {
		return MotionResult{Skipped: true, Reason: SkipOutside}
	}

	if srcRect.Size() != area.Size() {
		return MotionResult{Skipped: true, Reason: SkipSourceEdge, Area: area, Source: srcRect}
	}

	// Healing works in perceptual space.
	src := pick.Region(srcRect, heal.FormatRGBAPerceptual)
	buf := s.dest.Region(area, heal.FormatRGBAPerceptual)

	mx, my := maskOrigin(mask, c)
	r := buf.Bounds()
	stats := s.healer.Region(src, r, buf, r, mask, r.Add(image.Pt(mx, my)))

	paintMask := BrushMask(s.brush, c, s.opts.BrushScale, s.opts.Mode, hardness)
	px, py := maskOrigin(paintMask, c)
	s.dest.Replace(buf, area.Min, paintMask, image.Pt(px, py), min(opacity, 1), s.opts.Opacity)

	return MotionResult{Area: area, Source: srcRect, Stats: stats}
}

// source returns the pickable to sample from and the offset from
// destination to source coordinates.
func (s *Stroke) source() (Pickable, image.Point) {
	off := s.offset
	pick := s.src

	if s.opts.SampleMerged {
		if l, ok := s.src.(*Layer); ok {
			if im := l.Image(); im != nil {
				pick = im.Projection()
			}
			off = off.Add(l.Offset())
		}
	}

	if s.readsOriginal() {
		switch {
		case s.origProj != nil:
			pick = s.origProj
		case s.orig != nil:
			pick = s.orig
		}
	}
	return pick, off
}

// paintArea returns the brush bounds grown by one pixel and clipped to the
// destination layer.
func (s *Stroke) paintArea(c Coords) image.Rectangle {
	bw, bh := s.brush.Size(s.opts.BrushScale)
	fx, fy := c.floor()
	x := fx - bw/2
	y := fy - bh/2

	r := image.Rect(x-1, y-1, x+bw+1, y+bh+1)
	return r.Intersect(s.dest.Bounds())
}

func (s *Stroke) imageSize() (int, int) {
	if im := s.dest.Image(); im != nil {
		return im.Width(), im.Height()
	}
	return s.dest.Width(), s.dest.Height()
}

// Finish ends the stroke. With AlignNone the source point returns to where
// the stroke started.
func (s *Stroke) Finish() {
	if !s.started {
		return
	}
	if s.opts.Align == AlignNone && !s.first {
		s.srcX, s.srcY = s.origX, s.origY
	}
	s.started = false
	s.orig = nil
	s.origProj = nil

	heal.Logger().Info("heal: stroke finished",
		"layer", s.dest.Name(),
		"distance", s.pixelDist,
	)
}
