package heal

import (
	"image"
	"image/color"
	"testing"
)

func TestNewMask(t *testing.T) {
	mask := NewMask(100, 100)
	if mask.Width() != 100 || mask.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", mask.Width(), mask.Height())
	}

	// All values should be 0
	if mask.At(50, 50) != 0 {
		t.Errorf("expected 0, got %d", mask.At(50, 50))
	}
}

func TestNewMaskNegativeSize(t *testing.T) {
	mask := NewMask(-3, 4)
	if mask.Width() != 0 || len(mask.Data()) != 0 {
		t.Errorf("expected an empty mask, got %dx%d", mask.Width(), mask.Height())
	}
}

func TestMaskFill(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(128)

	if mask.At(50, 50) != 128 {
		t.Errorf("expected 128, got %d", mask.At(50, 50))
	}
}

func TestMaskBounds(t *testing.T) {
	mask := NewMask(100, 100)

	// Out of bounds should return 0
	if mask.At(-1, 50) != 0 {
		t.Error("expected 0 for out of bounds (negative x)")
	}
	if mask.At(100, 50) != 0 {
		t.Error("expected 0 for out of bounds (x >= width)")
	}
	if mask.At(50, -1) != 0 {
		t.Error("expected 0 for out of bounds (negative y)")
	}
	if mask.At(50, 100) != 0 {
		t.Error("expected 0 for out of bounds (y >= height)")
	}
}

func TestMaskSet(t *testing.T) {
	mask := NewMask(100, 100)

	mask.Set(50, 50, 128)
	if mask.At(50, 50) != 128 {
		t.Errorf("expected 128, got %d", mask.At(50, 50))
	}

	// Set out of bounds should be ignored
	mask.Set(-1, 50, 255)
	mask.Set(100, 50, 255)
	mask.Set(50, -1, 255)
	mask.Set(50, 100, 255)
}

func TestMaskBoundsRect(t *testing.T) {
	mask := NewMask(100, 200)
	bounds := mask.Bounds()

	if bounds != image.Rect(0, 0, 100, 200) {
		t.Errorf("Bounds() = %v, want (0,0)-(100,200)", bounds)
	}
}

func TestMaskRegion(t *testing.T) {
	mask := NewMask(4, 4)
	for y := range 4 {
		for x := range 4 {
			mask.Set(x, y, uint8(10*y+x+1))
		}
	}

	tests := []struct {
		name string
		r    image.Rectangle
		want map[image.Point]uint8
	}{
		{
			name: "inside",
			r:    image.Rect(1, 1, 3, 3),
			want: map[image.Point]uint8{{0, 0}: 12, {1, 0}: 13, {0, 1}: 22, {1, 1}: 23},
		},
		{
			name: "overhanging right and bottom",
			r:    image.Rect(3, 3, 5, 5),
			want: map[image.Point]uint8{{0, 0}: 34, {1, 0}: 0, {0, 1}: 0, {1, 1}: 0},
		},
		{
			name: "overhanging top left",
			r:    image.Rect(-1, -1, 1, 1),
			want: map[image.Point]uint8{{0, 0}: 0, {1, 0}: 0, {0, 1}: 0, {1, 1}: 1},
		},
		{
			name: "fully outside",
			r:    image.Rect(10, 10, 12, 12),
			want: map[image.Point]uint8{{0, 0}: 0, {1, 1}: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mask.Region(tt.r)
			if got.Width() != tt.r.Dx() || got.Height() != tt.r.Dy() {
				t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), tt.r.Dx(), tt.r.Dy())
			}
			for p, v := range tt.want {
				if got.At(p.X, p.Y) != v {
					t.Errorf("At(%d,%d) = %d, want %d", p.X, p.Y, got.At(p.X, p.Y), v)
				}
			}
		})
	}
}

func TestMaskPad(t *testing.T) {
	mask := NewMask(2, 3)
	mask.Fill(255)

	padded := mask.Pad(1)
	if padded.Width() != 4 || padded.Height() != 5 {
		t.Fatalf("size = %dx%d, want 4x5", padded.Width(), padded.Height())
	}
	for y := range 5 {
		for x := range 4 {
			border := x == 0 || y == 0 || x == 3 || y == 4
			v := padded.At(x, y)
			if border && v != 0 {
				t.Errorf("border (%d,%d) = %d, want 0", x, y, v)
			}
			if !border && v != 255 {
				t.Errorf("interior (%d,%d) = %d, want 255", x, y, v)
			}
		}
	}
}

func TestNewMaskFromAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(5, 5, color.RGBA{255, 0, 0, 200})

	mask := NewMaskFromAlpha(img)

	if mask.At(5, 5) != 200 {
		t.Errorf("expected 200, got %d", mask.At(5, 5))
	}
	if mask.At(0, 0) != 0 {
		t.Errorf("expected 0, got %d", mask.At(0, 0))
	}
}
