package paint

import (
	"math"
	"testing"

	"github.com/gogpu/heal"
)

// Test helper functions shared across paint tests.

// newFilledLayer creates an opaque R'G'B'A layer with every color channel at v.
func newFilledLayer(t *testing.T, w, h int, v float32) *Layer {
	t.Helper()
	l, err := NewLayer("test", w, h, heal.FormatRGBAPerceptual)
	if err != nil {
		t.Fatalf("NewLayer: %v", err)
	}
	l.Fill(v, v, v, 1)
	return l
}

// snapshot copies the raw samples of a layer.
func snapshot(l *Layer) []float32 {
	return append([]float32(nil), l.Buffer().Pix()...)
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
