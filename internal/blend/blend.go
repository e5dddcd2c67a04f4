// Package blend provides the straight-alpha compositing used to write healed
// pixels back into layers and to flatten layer stacks.
package blend

import "github.com/gogpu/heal/internal/color"

// Mode represents a compositing mode.
type Mode int

const (
	// ModeNormal composites source over destination (Porter-Duff source-over).
	ModeNormal Mode = iota
	// ModeReplace interpolates every channel, alpha included, so transparent
	// source pixels erase the destination.
	ModeReplace
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Blend composites src onto dst with the given coverage in [0,1].
// Colors have straight (non-premultiplied) alpha.
func Blend(src, dst color.RGBA, coverage float32, mode Mode) color.RGBA {
	if coverage <= 0 {
		return dst
	}
	coverage = min(coverage, 1)

	switch mode {
	case ModeReplace:
		return replace(src, dst, coverage)
	default:
		src.A *= coverage
		return sourceOver(src, dst)
	}
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst color.RGBA) color.RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return color.RGBA{}
	}

	return color.RGBA{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// replace interpolates from dst towards src. Color channels are weighted by
// their alpha so that fully transparent pixels do not bleed their color.
func replace(src, dst color.RGBA, t float32) color.RGBA {
	outA := lerp(dst.A, src.A, t)
	if outA == 0 {
		return color.RGBA{}
	}
	ws := t * src.A
	wd := (1 - t) * dst.A
	return color.RGBA{
		R: (src.R*ws + dst.R*wd) / outA,
		G: (src.G*ws + dst.G*wd) / outA,
		B: (src.B*ws + dst.B*wd) / outA,
		A: outA,
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
