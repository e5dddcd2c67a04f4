package heal

// Solver defaults. They reproduce the reference heal tool exactly and should
// only be overridden for experiments and benchmarks.
const (
	// DefaultOverRelaxation is the successive over-relaxation factor. It is
	// combined with the 0.25 Laplacian normalization into a weight of 0.45.
	DefaultOverRelaxation = 1.8

	// DefaultEpsilon is the squared-error threshold below which a solve has converged.
	DefaultEpsilon = 1e-8

	// DefaultMaxIterations caps the number of red/black sweeps per solve.
	DefaultMaxIterations = 500
)

// Option configures a Healer or a single Solve call.
// Use functional options to customize solver behavior.
//
// Example:
//
//	// Default solver, identical to the reference heal tool
//	h := heal.New()
//
//	// Bounded latency for very large brushes
//	h := heal.New(heal.WithMaxIterations(100))
type Option func(*options)

// options holds the solver configuration.
type options struct {
	maxIterations  int
	epsilon        float64
	overRelaxation float64
	pool           *Pool[float64]
}

// defaultOptions returns the reference solver configuration.
func defaultOptions() options {
	return options{
		maxIterations:  DefaultMaxIterations,
		epsilon:        DefaultEpsilon,
		overRelaxation: DefaultOverRelaxation,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMaxIterations sets the iteration cap. Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithEpsilon sets the convergence threshold on the accumulated squared error.
// Negative values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps >= 0 {
			o.epsilon = eps
		}
	}
}

// WithOverRelaxation sets the over-relaxation factor. Values outside (0, 2)
// do not converge and are ignored.
func WithOverRelaxation(f float64) Option {
	return func(o *options) {
		if f > 0 && f < 2 {
			o.overRelaxation = f
		}
	}
}

// WithPool makes a Healer take its float64 working fields from p instead of
// allocating them for every region.
func WithPool(p *Pool[float64]) Option {
	return func(o *options) {
		o.pool = p
	}
}
