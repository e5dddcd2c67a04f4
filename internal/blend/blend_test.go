package blend

import (
	"math"
	"testing"

	"github.com/gogpu/heal/internal/color"
)

func TestBlend(t *testing.T) {
	red := color.RGBA{R: 1, A: 1}
	blue := color.RGBA{B: 1, A: 1}
	transparent := color.RGBA{}
	halfBlue := color.RGBA{B: 1, A: 0.5}

	tests := []struct {
		name     string
		src, dst color.RGBA
		coverage float32
		mode     Mode
		want     color.RGBA
	}{
		{"normal opaque", red, blue, 1, ModeNormal, red},
		{"normal zero coverage", red, blue, 0, ModeNormal, blue},
		{"normal half coverage", red, blue, 0.5, ModeNormal, color.RGBA{R: 0.5, B: 0.5, A: 1}},
		{"normal transparent source", transparent, blue, 1, ModeNormal, blue},
		{"normal onto transparent", halfBlue, transparent, 1, ModeNormal, halfBlue},
		{"replace opaque", red, blue, 1, ModeReplace, red},
		{"replace half", red, blue, 0.5, ModeReplace, color.RGBA{R: 0.5, B: 0.5, A: 1}},
		{"replace erases", transparent, blue, 1, ModeReplace, transparent},
		{"replace partial erase", transparent, blue, 0.5, ModeReplace, color.RGBA{B: 1, A: 0.5}},
		{"coverage clamped", red, blue, 3, ModeReplace, red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(tt.src, tt.dst, tt.coverage, tt.mode)
			if !near(got, tt.want) {
				t.Errorf("Blend() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeNormal.String() != "normal" || ModeReplace.String() != "replace" || Mode(9).String() != "unknown" {
		t.Error("unexpected mode names")
	}
}

func near(a, b color.RGBA) bool {
	const eps = 1e-6
	d := func(x, y float32) bool { return math.Abs(float64(x-y)) <= eps }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
