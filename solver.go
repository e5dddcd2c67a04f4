package heal

import (
	"fmt"
	"log/slog"
)

// Laplace relaxation for the healing difference field.
//
// The solver approximates Δu = 0 over the masked interior with Dirichlet
// conditions taken from the initial field. It is an unoptimized red/black
// checkerboard Gauss-Seidel with over-relaxation; a multigrid initial guess
// would cut the iteration count considerably.
//
// Reference: T. Georgiev, "Photoshop Healing Brush: a Tool for Seamless Cloning".

// Stats describes how a solve terminated.
type Stats struct {
	// Iterations is the number of red/black sweeps performed.
	Iterations int

	// SquaredError is the accumulated squared change of the last sweep.
	SquaredError float64

	// Converged reports whether SquaredError fell below the threshold
	// before the iteration cap was reached.
	Converged bool
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("iterations", s.Iterations),
		slog.Float64("error", s.SquaredError),
		slog.Bool("converged", s.Converged),
	)
}

// Solve relaxes matrix in place until convergence or the iteration cap and
// leaves the result in solution.
//
// matrix and solution must have identical dimensions and mask must match
// their width and height. After every sweep solution is copied back into
// matrix, so on return both hold the relaxed field. Solve never fails; a
// solve that reaches the cap reports Converged == false.
func Solve(matrix *Float64Buffer, mask *Mask, solution *Float64Buffer, opts ...Option) Stats {
	o := newOptions(opts)
	checkSolverShapes(matrix, mask, solution)
	return solve(matrix, mask, solution, &o)
}

func solve(matrix *Float64Buffer, mask *Mask, solution *Float64Buffer, o *options) Stats {
	var st Stats
	for st.Iterations < o.maxIterations {
		st.SquaredError = iterate(matrix, mask, solution, o.overRelaxation*0.25)
		st.Iterations++

		copyField(matrix, solution)

		if st.SquaredError < o.epsilon {
			st.Converged = true
			break
		}
	}
	return st
}

// Iterate performs one red/black sweep over matrix, writing the relaxed
// values into solution, and returns the accumulated squared change of the
// relaxed pixels.
//
// Border pixels and pixels where mask is 0 are copied from matrix unchanged.
// Red pixels read their neighbours from matrix; black pixels read them from
// solution so that reds of the same sweep are already taken into account.
func Iterate(matrix *Float64Buffer, mask *Mask, solution *Float64Buffer, overRelaxation float64) float64 {
	checkSolverShapes(matrix, mask, solution)
	return iterate(matrix, mask, solution, overRelaxation*0.25)
}

func iterate(matrix *Float64Buffer, mask *Mask, solution *Float64Buffer, w float64) float64 {
	var (
		height = matrix.height
		width  = matrix.width
		depth  = matrix.depth
		m      = matrix.pix
		s      = solution.pix
		mrow   = matrix.stride
		srow   = solution.stride
		bits   = mask.data
		sqrErr float64
	)

	// reds
	for i := 0; i < height; i++ {
		for j := i % 2; j < width; j += 2 {
			mo := i*mrow + j*depth
			so := i*srow + j*depth

			if bits[i*width+j] == 0 || i == 0 || i == height-1 || j == 0 || j == width-1 {
				copy(s[so:so+depth], m[mo:mo+depth])
				continue
			}

			for k := 0; k < depth; k++ {
				prev := s[so+k]
				v := m[mo+k] + w*(m[mo-depth+k]+ // west
					m[mo+depth+k]+ // east
					m[mo-mrow+k]+ // north
					m[mo+mrow+k]- // south
					4.0*m[mo+k])
				s[so+k] = v

				d := v - prev
				sqrErr += d * d
			}
		}
	}

	// blacks
	for i := 0; i < height; i++ {
		for j := (i + 1) % 2; j < width; j += 2 {
			mo := i*mrow + j*depth
			so := i*srow + j*depth

			if bits[i*width+j] == 0 || i == 0 || i == height-1 || j == 0 || j == width-1 {
				copy(s[so:so+depth], m[mo:mo+depth])
				continue
			}

			for k := 0; k < depth; k++ {
				prev := s[so+k]
				v := m[mo+k] + w*(s[so-depth+k]+ // west
					s[so+depth+k]+ // east
					s[so-srow+k]+ // north
					s[so+srow+k]- // south
					4.0*m[mo+k])
				s[so+k] = v

				d := v - prev
				sqrErr += d * d
			}
		}
	}

	return sqrErr
}

// copyField copies solution back into matrix.
func copyField(matrix, solution *Float64Buffer) {
	if matrix.stride == solution.stride && len(matrix.pix) == len(solution.pix) {
		copy(matrix.pix, solution.pix)
		return
	}
	for y := range matrix.height {
		copy(matrix.Row(y), solution.Row(y))
	}
}

func checkSolverShapes(matrix *Float64Buffer, mask *Mask, solution *Float64Buffer) {
	if matrix == nil || mask == nil || solution == nil {
		panic("heal: nil solver operand")
	}
	if matrix.width != solution.width || matrix.height != solution.height || matrix.depth != solution.depth {
		panic(fmt.Sprintf("heal: solution %dx%dx%d does not match matrix %dx%dx%d",
			solution.width, solution.height, solution.depth,
			matrix.width, matrix.height, matrix.depth))
	}
	if mask.width != matrix.width || mask.height != matrix.height {
		panic(fmt.Sprintf("heal: mask %dx%d does not match matrix %dx%d",
			mask.width, mask.height, matrix.width, matrix.height))
	}
}
