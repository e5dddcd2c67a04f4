package heal

import (
	"image"
	"testing"
)

func TestRegion_UniformPatches(t *testing.T) {
	// Destination (100,100,100,255), source (150,150,150,255). The difference
	// is uniform, so the harmonic field is constant and the healed interior
	// takes the destination colour with the source texture (none) on top.
	dest := newFilledBuffer(10, 10, 4, 0)
	dest.Fill(100.0/255, 100.0/255, 100.0/255, 1)
	src := newFilledBuffer(10, 10, 4, 0)
	src.Fill(150.0/255, 150.0/255, 150.0/255, 1)

	mask := newInteriorMask(10, 10)
	r := image.Rect(0, 0, 10, 10)
	st := Region(src, r, dest, r, mask, r)

	if !st.Converged {
		t.Errorf("expected convergence, stats = %+v", st)
	}
	want := []float32{100.0 / 255, 100.0 / 255, 100.0 / 255, 1}
	for y := range 10 {
		for x := range 10 {
			px := dest.Pixel(x, y)
			for k := range want {
				if !approxEqual(float64(px[k]), float64(want[k]), 1e-5) {
					t.Fatalf("(%d,%d)[%d] = %v, want %v", x, y, k, px[k], want[k])
				}
			}
		}
	}
}

func TestRegion_TexturePlusOffset(t *testing.T) {
	// dest = src + 0.1 everywhere: the difference is constant and the healed
	// region reproduces the source texture shifted by the offset.
	src := newPatternBuffer(12, 12, 3)
	dest := src.Clone()
	for i := range dest.pix {
		dest.pix[i] += 0.1
	}
	want := dest.Clone()

	r := src.Bounds()
	Region(src, r, dest, r, newInteriorMask(12, 12), r)

	for i, v := range dest.Pix() {
		if !approxEqual(float64(v), float64(want.pix[i]), 1e-5) {
			t.Fatalf("sample %d = %v, want %v", i, v, want.pix[i])
		}
	}
}

func TestRegion_BoundaryKeepsDestination(t *testing.T) {
	src := newPatternBuffer(16, 16, 4)
	dest := newFilledBuffer(20, 20, 4, 0.4)
	orig := dest.Clone()

	srcRect := image.Rect(0, 0, 12, 12)
	destRect := image.Rect(5, 6, 17, 18)
	mask := newInteriorMask(12, 12)

	Region(src, srcRect, dest, destRect, mask, mask.Bounds())

	for y := range 20 {
		for x := range 20 {
			p := image.Pt(x, y)
			inner := destRect.Inset(1)
			if p.In(inner) {
				continue
			}
			got, want := dest.Pixel(x, y), orig.Pixel(x, y)
			for k := range want {
				if !approxEqual(float64(got[k]), float64(want[k]), 1e-6) {
					t.Fatalf("boundary (%d,%d)[%d] = %v, want %v", x, y, k, got[k], want[k])
				}
			}
		}
	}
}

func TestRegion_MaskOutsideReadsZero(t *testing.T) {
	// A mask rectangle entirely outside the mask raster leaves dest as is.
	src := newPatternBuffer(8, 8, 4)
	dest := newFilledBuffer(8, 8, 4, 0.6)
	r := src.Bounds()

	st := Region(src, r, dest, r, NewMask(4, 4), image.Rect(20, 20, 28, 28))
	if st.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", st.Iterations)
	}
	for i, v := range dest.Pix() {
		if !approxEqual(float64(v), 0.6, 1e-6) {
			t.Fatalf("sample %d = %v, want 0.6", i, v)
		}
	}
}

func TestRegion_NilMaskRelaxesInterior(t *testing.T) {
	// The interior is bright, the border matches the source plus 0.4: with
	// no mask every interior pixel relaxes onto the border offset.
	src := newFilledBuffer(10, 10, 4, 0.2)
	dest := newFilledBuffer(10, 10, 4, 0.6)
	r := dest.Bounds()
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			copy(dest.Pixel(x, y), []float32{1, 1, 1, 1})
		}
	}

	st := Region(src, r, dest, r, nil, image.Rectangle{})
	if !st.Converged {
		t.Fatalf("expected convergence, stats = %+v", st)
	}
	for i, v := range dest.Pix() {
		if !approxEqual(float64(v), 0.6, 1e-4) {
			t.Fatalf("sample %d = %v, want 0.6", i, v)
		}
	}
}

func TestRegion_InPlaceOverlap(t *testing.T) {
	tests := []struct {
		name     string
		srcRect  image.Rectangle
		destRect image.Rectangle
	}{
		{"shifted down", image.Rect(2, 2, 18, 18), image.Rect(2, 6, 18, 22)},
		{"shifted up left", image.Rect(3, 9, 17, 25), image.Rect(1, 5, 15, 21)},
		{"disjoint", image.Rect(0, 0, 8, 8), image.Rect(10, 20, 18, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newPatternBuffer(20, 30, 4)
			want := buf.Clone()
			mask := newInteriorMask(tt.srcRect.Dx(), tt.srcRect.Dy())

			Region(buf.Clone(), tt.srcRect, want, tt.destRect, mask, mask.Bounds())
			Region(buf, tt.srcRect, buf, tt.destRect, mask, mask.Bounds())

			for i, v := range buf.Pix() {
				if !approxEqual(float64(v), float64(want.pix[i]), 1e-6) {
					t.Fatalf("sample %d = %v, want %v", i, v, want.pix[i])
				}
			}
		})
	}
}

func TestRegion_OverlappingViews(t *testing.T) {
	buf := newPatternBuffer(20, 30, 4)
	want := buf.Clone()
	mask := newInteriorMask(12, 12)
	srcRect, destRect := image.Rect(0, 0, 12, 12), image.Rect(3, 4, 15, 16)

	Region(buf.Clone().Sub(image.Rect(2, 2, 20, 30)), srcRect, want.Sub(image.Rect(2, 2, 20, 30)), destRect, mask, mask.Bounds())
	Region(buf.Sub(image.Rect(2, 2, 20, 30)), srcRect, buf.Sub(image.Rect(2, 2, 20, 30)), destRect, mask, mask.Bounds())

	for i, v := range buf.Pix() {
		if !approxEqual(float64(v), float64(want.pix[i]), 1e-6) {
			t.Fatalf("sample %d = %v, want %v", i, v, want.pix[i])
		}
	}
}

func TestRecompose_InPlaceOverlap(t *testing.T) {
	// A zero solution copies the source rectangle as it was before the call.
	buf := newPatternBuffer(10, 16, 3)
	orig := buf.Clone()
	srcRect, destRect := image.Rect(0, 0, 10, 8), image.Rect(0, 3, 10, 11)

	Recompose(mustBuffer[float64](10, 8, 3), buf, srcRect, buf, destRect)

	for y := range 8 {
		for x := range 10 {
			got, want := buf.Pixel(x, y+3), orig.Pixel(x, y)
			for k := range want {
				if got[k] != want[k] {
					t.Fatalf("(%d,%d)[%d] = %v, want %v", x, y+3, k, got[k], want[k])
				}
			}
		}
	}
}

func TestHealer_UsesPool(t *testing.T) {
	p := NewPool[float64](4)
	h := New(WithPool(p))

	for range 3 {
		src := newPatternBuffer(6, 6, 4)
		dest := newFilledBuffer(6, 6, 4, 0.5)
		r := src.Bounds()
		h.Region(src, r, dest, r, newInteriorMask(6, 6), r)
	}
	if got := p.Len(); got != 2 {
		t.Errorf("pool holds %d fields, want 2", got)
	}
}

func TestRegion_Panics(t *testing.T) {
	r := image.Rect(0, 0, 6, 6)
	tests := []struct {
		name string
		fn   func()
	}{
		{"depth mismatch", func() {
			Region(newFilledBuffer(6, 6, 3, 0), r, newFilledBuffer(6, 6, 4, 0), r, NewMask(6, 6), r)
		}},
		{"dest size mismatch", func() {
			Region(newFilledBuffer(6, 6, 4, 0), r, newFilledBuffer(6, 6, 4, 0), image.Rect(0, 0, 5, 6), NewMask(6, 6), r)
		}},
		{"mask size mismatch", func() {
			Region(newFilledBuffer(6, 6, 4, 0), r, newFilledBuffer(6, 6, 4, 0), r, NewMask(6, 6), image.Rect(0, 0, 6, 5))
		}},
		{"gray", func() {
			Region(newFilledBuffer(6, 6, 1, 0), r, newFilledBuffer(6, 6, 1, 0), r, NewMask(6, 6), r)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
