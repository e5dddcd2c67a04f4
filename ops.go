package heal

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/floats"
)

// Difference returns top − bottom for every pixel and channel of the two
// equally sized regions, widened to float64.
//
// Both buffers must have 3 or 4 channels (R'G'B' or R'G'B'A) and the same
// depth; the rectangles must have the same size and lie inside their buffers.
// Violations panic.
func Difference(top *Float32Buffer, topRect image.Rectangle, bottom *Float32Buffer, bottomRect image.Rectangle) *Float64Buffer {
	checkOperands(top, topRect, bottom, bottomRect)
	result := mustBuffer[float64](topRect.Dx(), topRect.Dy(), top.depth)
	difference(result, top, topRect, bottom, bottomRect)
	return result
}

func difference(result *Float64Buffer, top *Float32Buffer, topRect image.Rectangle, bottom *Float32Buffer, bottomRect image.Rectangle) {
	n := topRect.Dx() * top.depth
	a := make([]float64, n)
	b := make([]float64, n)

	for y := range topRect.Dy() {
		widen(a, rowOf(top, topRect, y))
		widen(b, rowOf(bottom, bottomRect, y))
		floats.SubTo(result.Row(y), a, b)
	}
}

// Recompose writes solution + source, narrowed to float32, into dest's
// destRect. solution must match the rectangles in size and depth.
// The channel contract is the one of Difference.
func Recompose(solution *Float64Buffer, src *Float32Buffer, srcRect image.Rectangle, dest *Float32Buffer, destRect image.Rectangle) {
	checkOperands(src, srcRect, dest, destRect)
	if solution == nil {
		panic("heal: nil solution")
	}
	if solution.width != srcRect.Dx() || solution.height != srcRect.Dy() || solution.depth != src.depth {
		panic(fmt.Sprintf("heal: solution %dx%dx%d does not match region %dx%dx%d",
			solution.width, solution.height, solution.depth,
			srcRect.Dx(), srcRect.Dy(), src.depth))
	}
	src, srcRect = detach(src, srcRect, dest, destRect)
	recompose(dest, destRect, solution, src, srcRect)
}

// detach returns a private copy of srcRect when writing destRect of dest
// could change it, and src unchanged otherwise.
func detach(src *Float32Buffer, srcRect image.Rectangle, dest *Float32Buffer, destRect image.Rectangle) (*Float32Buffer, image.Rectangle) {
	if !shareSamples(src, dest) || (src == dest && !srcRect.Overlaps(destRect)) {
		return src, srcRect
	}
	c := src.Sub(srcRect).Clone()
	return c, c.Bounds()
}

// shareSamples reports whether a and b are views of the same sample array.
// Views made by Sub keep the capacity of their parent, so they end on the
// same element.
func shareSamples(a, b *Float32Buffer) bool {
	pa, pb := a.pix[:cap(a.pix)], b.pix[:cap(b.pix)]
	return &pa[len(pa)-1] == &pb[len(pb)-1]
}

func recompose(dest *Float32Buffer, destRect image.Rectangle, solution *Float64Buffer, src *Float32Buffer, srcRect image.Rectangle) {
	n := srcRect.Dx() * src.depth
	s := make([]float64, n)
	sum := make([]float64, n)

	for y := range srcRect.Dy() {
		widen(s, rowOf(src, srcRect, y))
		floats.AddTo(sum, solution.Row(y), s)

		out := rowOf(dest, destRect, y)
		for i, v := range sum {
			out[i] = float32(v)
		}
	}
}

// rowOf returns row y of r inside b.
func rowOf(b *Float32Buffer, r image.Rectangle, y int) []float32 {
	start := (r.Min.Y+y)*b.stride + r.Min.X*b.depth
	return b.pix[start : start+r.Dx()*b.depth]
}

func widen(dst []float64, src []float32) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// checkDepth panics unless depth is a supported R'G'B'(A) channel count.
func checkDepth(depth int) {
	if depth != 3 && depth != 4 {
		panic(fmt.Sprintf("heal: unsupported channel count %d", depth))
	}
}

// checkOperands validates a pair of regions taking part in a healing operation.
func checkOperands(a *Float32Buffer, ar image.Rectangle, b *Float32Buffer, br image.Rectangle) {
	if a == nil || b == nil {
		panic("heal: nil buffer")
	}
	checkDepth(a.depth)
	if a.depth != b.depth {
		panic(fmt.Sprintf("heal: channel count mismatch %d != %d", a.depth, b.depth))
	}
	if ar.Size() != br.Size() {
		panic(fmt.Sprintf("heal: region size mismatch %v != %v", ar.Size(), br.Size()))
	}
	if ar.Empty() || !ar.In(a.Bounds()) || !br.In(b.Bounds()) {
		panic(fmt.Sprintf("heal: region %v or %v outside its buffer", ar, br))
	}
}
