package paint

import "image"

// Image is a stack of layers sharing one canvas.
type Image struct {
	width, height int
	layers        []*Layer // bottom to top
}

// NewImage creates an empty image.
func NewImage(width, height int) *Image {
	return &Image{width: width, height: height}
}

// Bounds returns the canvas extent.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// Width returns the canvas width.
func (im *Image) Width() int { return im.width }

// Height returns the canvas height.
func (im *Image) Height() int { return im.height }

// Add places l on top of the stack at offset.
func (im *Image) Add(l *Layer, offset image.Point) {
	l.image = im
	l.offset = offset
	im.layers = append(im.layers, l)
}

// Layers returns the layers from bottom to top.
func (im *Image) Layers() []*Layer {
	return im.layers
}

// Projection returns a live flattened view of the image.
func (im *Image) Projection() *Projection {
	return &Projection{image: im}
}
