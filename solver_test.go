package heal

import (
	"math"
	"testing"
)

// newField converts a float32 buffer into a solver field.
func newField(b *Float32Buffer) *Float64Buffer {
	f := mustBuffer[float64](b.Width(), b.Height(), b.Depth())
	for i, v := range b.Pix() {
		f.pix[i] = float64(v)
	}
	return f
}

func TestIterate_RedThenBlack(t *testing.T) {
	// 4x3 field: (1,1) is red, (2,1) is black, everything else is border.
	matrix := mustBuffer[float64](4, 3, 1)
	matrix.Pixel(1, 1)[0] = 1
	solution := mustBuffer[float64](4, 3, 1)
	mask := NewMask(4, 3)
	mask.Fill(255)

	got := Iterate(matrix, mask, solution, DefaultOverRelaxation)

	red := 1 + 0.45*(0-4*1.0) // -0.8
	black := 0.45 * red       // reads the updated red neighbour
	if v := solution.Pixel(1, 1)[0]; !approxEqual(v, red, 1e-12) {
		t.Errorf("red pixel = %v, want %v", v, red)
	}
	if v := solution.Pixel(2, 1)[0]; !approxEqual(v, black, 1e-12) {
		t.Errorf("black pixel = %v, want %v", v, black)
	}
	if want := red*red + black*black; !approxEqual(got, want, 1e-12) {
		t.Errorf("squared error = %v, want %v", got, want)
	}
	if matrix.Pixel(1, 1)[0] != 1 {
		t.Error("Iterate must not modify matrix")
	}
}

func TestSolve_BoundaryPreserved(t *testing.T) {
	const w, h = 12, 10
	matrix := newField(newPatternBuffer(w, h, 4))
	orig := matrix.Clone()
	solution := mustBuffer[float64](w, h, 4)

	mask := newInteriorMask(w, h)
	// Holes inside the interior are boundary too.
	mask.Set(4, 4, 0)
	mask.Set(7, 5, 0)

	Solve(matrix, mask, solution)

	for y := range h {
		for x := range w {
			if x != 0 && y != 0 && x != w-1 && y != h-1 && mask.At(x, y) != 0 {
				continue
			}
			want := orig.Pixel(x, y)
			got := solution.Pixel(x, y)
			for k := range want {
				if got[k] != want[k] {
					t.Fatalf("fixed pixel (%d,%d)[%d] = %v, want %v", x, y, k, got[k], want[k])
				}
			}
		}
	}
}

func TestSolve_ZeroMask(t *testing.T) {
	matrix := newField(newPatternBuffer(9, 7, 3))
	orig := matrix.Clone()
	solution := mustBuffer[float64](9, 7, 3)

	st := Solve(matrix, NewMask(9, 7), solution)

	if st.Iterations != 1 || !st.Converged || st.SquaredError != 0 {
		t.Errorf("stats = %+v, want 1 converged iteration with zero error", st)
	}
	for i, v := range orig.Pix() {
		if solution.Pix()[i] != v || matrix.Pix()[i] != v {
			t.Fatalf("sample %d changed: solution %v, matrix %v, want %v",
				i, solution.Pix()[i], matrix.Pix()[i], v)
		}
	}
}

func TestSolve_ConvergesToHarmonic(t *testing.T) {
	const w, h = 8, 8
	matrix := newField(newPatternBuffer(w, h, 4))
	solution := mustBuffer[float64](w, h, 4)

	st := Solve(matrix, newInteriorMask(w, h), solution)

	if !st.Converged {
		t.Fatalf("solve did not converge: %+v", st)
	}
	if st.Iterations < 1 || st.Iterations > DefaultMaxIterations {
		t.Errorf("iterations = %d, want 1..%d", st.Iterations, DefaultMaxIterations)
	}
	if st.SquaredError < 0 || st.SquaredError >= DefaultEpsilon {
		t.Errorf("squared error = %g, want in [0, %g)", st.SquaredError, DefaultEpsilon)
	}

	// Interior samples satisfy the discrete Laplace equation.
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for k := range 4 {
				c := solution.Pixel(x, y)[k]
				avg := (solution.Pixel(x-1, y)[k] + solution.Pixel(x+1, y)[k] +
					solution.Pixel(x, y-1)[k] + solution.Pixel(x, y+1)[k]) / 4
				if !approxEqual(c, avg, 1e-3) {
					t.Fatalf("(%d,%d)[%d] = %v, neighbour mean %v", x, y, k, c, avg)
				}
			}
		}
	}

	// Matrix holds the same relaxed field on return.
	for i, v := range solution.Pix() {
		if matrix.Pix()[i] != v {
			t.Fatalf("matrix sample %d = %v, want %v", i, matrix.Pix()[i], v)
		}
	}
}

func TestSolve_IterationCap(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		max  int
	}{
		{"default cap", nil, DefaultMaxIterations},
		{"custom cap", []Option{WithMaxIterations(3)}, 3},
		{"unreachable epsilon", []Option{WithEpsilon(0), WithMaxIterations(20)}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix := newField(newPatternBuffer(32, 32, 3))
			solution := mustBuffer[float64](32, 32, 3)
			st := Solve(matrix, newInteriorMask(32, 32), solution, tt.opts...)

			if st.Iterations > tt.max {
				t.Errorf("iterations = %d, want <= %d", st.Iterations, tt.max)
			}
			if st.SquaredError < 0 || math.IsNaN(st.SquaredError) {
				t.Errorf("squared error = %v, want finite non-negative", st.SquaredError)
			}
			if !st.Converged && st.Iterations != tt.max {
				t.Errorf("stopped after %d iterations without converging", st.Iterations)
			}
		})
	}
}

func TestSolve_ShapePanics(t *testing.T) {
	tests := []struct {
		name     string
		matrix   *Float64Buffer
		mask     *Mask
		solution *Float64Buffer
	}{
		{"nil mask", mustBuffer[float64](4, 4, 3), nil, mustBuffer[float64](4, 4, 3)},
		{"solution size", mustBuffer[float64](4, 4, 3), NewMask(4, 4), mustBuffer[float64](5, 4, 3)},
		{"solution depth", mustBuffer[float64](4, 4, 3), NewMask(4, 4), mustBuffer[float64](4, 4, 4)},
		{"mask size", mustBuffer[float64](4, 4, 3), NewMask(4, 3), mustBuffer[float64](4, 4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Solve(tt.matrix, tt.mask, tt.solution)
		})
	}
}

func TestStats_LogValue(t *testing.T) {
	v := Stats{Iterations: 7, SquaredError: 0.5, Converged: true}.LogValue()
	attrs := v.Group()
	if len(attrs) != 3 {
		t.Fatalf("LogValue group has %d attrs, want 3", len(attrs))
	}
	if attrs[0].Key != "iterations" || attrs[0].Value.Int64() != 7 {
		t.Errorf("first attr = %v, want iterations=7", attrs[0])
	}
}
