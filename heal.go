package heal

import (
	"fmt"
	"image"
)

// Healer runs the healing pipeline with a fixed solver configuration.
// A Healer is immutable after New and may be shared between goroutines;
// each Region call owns its working buffers.
type Healer struct {
	opts options
}

// New creates a Healer with the given options.
func New(opts ...Option) *Healer {
	return &Healer{opts: newOptions(opts)}
}

var defaultHealer = New()

// Region heals destRect of dest using srcRect of src as the texture source,
// with the default solver configuration. See Healer.Region.
func Region(src *Float32Buffer, srcRect image.Rectangle, dest *Float32Buffer, destRect image.Rectangle, mask *Mask, maskRect image.Rectangle) Stats {
	return defaultHealer.Region(src, srcRect, dest, destRect, mask, maskRect)
}

// Region blends srcRect of src seamlessly into destRect of dest.
//
// The difference dest − src is relaxed under the Laplace equation inside the
// non-zero pixels of mask's maskRect, keeping the rectangle border and the
// zero pixels as fixed boundary, and the relaxed field is added back onto
// the source. The result overwrites destRect.
//
// A nil mask relaxes the whole interior of the rectangle; maskRect is then
// ignored. src and dest may be the same buffer, or views of one, with
// overlapping rectangles: srcRect is read as it was before the call.
//
// The three rectangles must have the same size and src and dest the same
// channel count (3 or 4). Parts of maskRect outside the mask read as 0.
// Violations panic. Region does not fail when the solver hits its iteration
// cap; the returned Stats report it.
func (h *Healer) Region(src *Float32Buffer, srcRect image.Rectangle, dest *Float32Buffer, destRect image.Rectangle, mask *Mask, maskRect image.Rectangle) Stats {
	checkOperands(src, srcRect, dest, destRect)
	width, height, depth := srcRect.Dx(), srcRect.Dy(), src.depth

	var m *Mask
	if mask == nil {
		m = NewMask(width, height)
		m.Fill(255)
	} else {
		if maskRect.Size() != srcRect.Size() {
			panic(fmt.Sprintf("heal: mask region size %v does not match %v", maskRect.Size(), srcRect.Size()))
		}
		m = mask.Region(maskRect)
	}
	src, srcRect = detach(src, srcRect, dest, destRect)

	i1, i2 := h.fields(width, height, depth)

	difference(i1, dest, destRect, src, srcRect)

	st := solve(i1, m, i2, &h.opts)

	recompose(dest, destRect, i2, src, srcRect)

	if p := h.opts.pool; p != nil {
		p.Put(i1)
		p.Put(i2)
	}

	log := Logger()
	log.Debug("heal: region solved",
		"width", width,
		"height", height,
		"iterations", st.Iterations,
		"error", st.SquaredError,
		"converged", st.Converged,
	)
	if !st.Converged {
		log.Warn("heal: relaxation did not converge",
			"iterations", st.Iterations,
			"error", st.SquaredError,
		)
	}
	return st
}

// fields returns the difference and solution fields for one region.
func (h *Healer) fields(width, height, depth int) (i1, i2 *Float64Buffer) {
	if p := h.opts.pool; p != nil {
		if i1, i2 = p.Get(width, height, depth), p.Get(width, height, depth); i1 != nil && i2 != nil {
			return i1, i2
		}
	}
	return mustBuffer[float64](width, height, depth), mustBuffer[float64](width, height, depth)
}
