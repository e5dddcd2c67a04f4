package heal

import (
	"errors"
	"fmt"
	"image"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width, height or depth is non-positive.
	ErrInvalidDimensions = errors.New("heal: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("heal: data buffer too small")
)

// Float is the set of sample types a Buffer can hold.
type Float interface {
	~float32 | ~float64
}

// Buffer is a width × height grid of pixels with depth channels each.
//
// Samples are stored in a flat slice; channel k of pixel (x, y) lives at
// y*Stride() + x*Depth() + k. A Buffer returned by Sub shares storage with
// its parent.
//
// Buffers are owned by a single caller and are not safe for concurrent writes.
type Buffer[T Float] struct {
	pix    []T
	width  int
	height int
	depth  int
	stride int
}

// Float32Buffer holds working pixel data (patches, paint buffers).
type Float32Buffer = Buffer[float32]

// Float64Buffer holds the solver's difference and solution fields.
type Float64Buffer = Buffer[float64]

// NewBuffer allocates a zeroed buffer.
// Returns ErrInvalidDimensions if any dimension is non-positive.
func NewBuffer[T Float](width, height, depth int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * depth
	return &Buffer[T]{
		pix:    make([]T, stride*height),
		width:  width,
		height: height,
		depth:  depth,
		stride: stride,
	}, nil
}

// FromSlice wraps existing samples without copying. The slice is addressed
// with stride width*depth and must hold at least width*height*depth samples.
func FromSlice[T Float](pix []T, width, height, depth int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height * depth
	if len(pix) < n {
		return nil, ErrDataTooSmall
	}
	return &Buffer[T]{
		pix:    pix[:n],
		width:  width,
		height: height,
		depth:  depth,
		stride: width * depth,
	}, nil
}

// mustBuffer allocates a buffer for internal use where the dimensions
// have already been validated.
func mustBuffer[T Float](width, height, depth int) *Buffer[T] {
	b, err := NewBuffer[T](width, height, depth)
	if err != nil {
		panic(fmt.Sprintf("heal: allocate %dx%dx%d buffer: %v", width, height, depth, err))
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer[T]) Height() int { return b.height }

// Depth returns the number of channels per pixel.
func (b *Buffer[T]) Depth() int { return b.depth }

// Stride returns the number of samples between vertically adjacent pixels.
func (b *Buffer[T]) Stride() int { return b.stride }

// Pix returns the underlying samples.
func (b *Buffer[T]) Pix() []T { return b.pix }

// Bounds returns the buffer extent with its origin at (0, 0).
func (b *Buffer[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Offset returns the index of channel 0 of pixel (x, y), or -1 when the
// coordinates are out of bounds.
func (b *Buffer[T]) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.depth
}

// Pixel returns the channels of pixel (x, y) as a sub-slice, or nil when out of bounds.
func (b *Buffer[T]) Pixel(x, y int) []T {
	off := b.Offset(x, y)
	if off < 0 {
		return nil
	}
	return b.pix[off : off+b.depth : off+b.depth]
}

// Row returns the samples of row y restricted to the buffer width.
func (b *Buffer[T]) Row(y int) []T {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.pix[start : start+b.width*b.depth]
}

// Fill sets every pixel to the given channel values. Missing values leave
// the corresponding channels untouched.
func (b *Buffer[T]) Fill(values ...T) {
	n := min(len(values), b.depth)
	for y := range b.height {
		row := b.Row(y)
		for x := 0; x < len(row); x += b.depth {
			copy(row[x:x+n], values[:n])
		}
	}
}

// Clear zeroes all samples.
func (b *Buffer[T]) Clear() {
	for y := range b.height {
		clear(b.Row(y))
	}
}

// Clone returns a deep, compact copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := mustBuffer[T](b.width, b.height, b.depth)
	for y := range b.height {
		copy(c.Row(y), b.Row(y))
	}
	return c
}

// Sub returns a view of r, which must lie inside the buffer bounds.
// The view shares samples with b. Returns nil when r is empty or out of bounds.
func (b *Buffer[T]) Sub(r image.Rectangle) *Buffer[T] {
	if r.Empty() || !r.In(b.Bounds()) {
		return nil
	}
	start := r.Min.Y*b.stride + r.Min.X*b.depth
	end := (r.Max.Y-1)*b.stride + r.Max.X*b.depth
	return &Buffer[T]{
		pix:    b.pix[start:end],
		width:  r.Dx(),
		height: r.Dy(),
		depth:  b.depth,
		stride: b.stride,
	}
}

// CopyRect copies src's r into dst with r.Min mapped to dp.
// Both buffers must have the same depth; the rectangle is clipped to both buffers.
func CopyRect[T Float](dst *Buffer[T], dp image.Point, src *Buffer[T], r image.Rectangle) {
	if dst.depth != src.depth {
		panic(fmt.Sprintf("heal: copy between depths %d and %d", src.depth, dst.depth))
	}
	clipped := r.Intersect(src.Bounds())
	if clipped.Empty() {
		return
	}
	dp = dp.Add(clipped.Min.Sub(r.Min))
	r = clipped
	dr := r.Sub(r.Min).Add(dp).Intersect(dst.Bounds())
	if dr.Empty() {
		return
	}
	sp := r.Min.Add(dr.Min.Sub(dp))
	n := dr.Dx() * dst.depth
	for y := range dr.Dy() {
		so := (sp.Y+y)*src.stride + sp.X*src.depth
		do := (dr.Min.Y+y)*dst.stride + dr.Min.X*dst.depth
		copy(dst.pix[do:do+n], src.pix[so:so+n])
	}
}
