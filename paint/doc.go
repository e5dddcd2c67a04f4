// Package paint drives the heal tool over layers: it tracks the source
// point through a stroke, cuts the paint and source patches, builds brush
// masks, runs the seamless-cloning solver from package heal, and writes the
// result back into the destination layer.
//
// # Quick Start
//
//	img := paint.NewImage(640, 480)
//	layer, _ := paint.NewLayer("background", 640, 480, heal.FormatRGBAPerceptual)
//	img.Add(layer, image.Point{})
//
//	s, _ := paint.NewStroke(layer, paint.NewGeneratedBrush(12, 0.8), paint.DefaultOptions())
//	s.SetSource(layer, paint.Coords{X: 100, Y: 120, Pressure: 1})
//	if err := s.Start(paint.Coords{X: 300, Y: 200, Pressure: 1}); err != nil {
//		return err
//	}
//	s.Motion(paint.Coords{X: 300, Y: 200, Pressure: 1})
//	s.Motion(paint.Coords{X: 310, Y: 204, Pressure: 1})
//	s.Finish()
//
// # Coordinates
//
// Stroke coordinates are local to the destination layer. With sample
// merged enabled the source is read from the image projection and the
// source layer's offset is added to the source offset.
//
// A Stroke is not safe for concurrent use.
package paint
