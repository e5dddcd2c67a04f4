package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/gogpu/heal"
	"github.com/gogpu/heal/internal/imageio"
	"github.com/gogpu/heal/internal/locale"
	"github.com/gogpu/heal/internal/parallel"
	"github.com/gogpu/heal/paint"
)

var (
	healOutput     string
	healSuffix     string
	healJobs       int
	healSource     string
	healStroke     string
	healBrushSize  float64
	healHardness   float64
	healBrushImage string
	healScale      float64
	healOpacity    float64
	healAlign      string
	healMode       string
	healDynamics   string
	healFadeLength float64
	healFadeUnit   string
	healFadeRepeat string
	healFadeRev    bool
	healMaxIter    int
	healLinear     bool
	healQuality    int
)

var healCmd = &cobra.Command{
	Use:   "heal <input>...",
	Short: "Heal images along a brush stroke",
	Long: `Heal one or more images along a brush stroke.

Every dab of the stroke copies texture from the source point and blends it
seamlessly into its surroundings. The source follows the brush according to
--align.

Examples:
  gimpheal heal photo.png --source 40,40 --stroke "120,80;124,82;128,85"
  gimpheal heal photo.png -o out.png --source 40,40 --stroke 120,80 --brush-size 30 --mode hard
  gimpheal heal a.jpg b.jpg --jobs 2 --source 5,5 --stroke "60,60,0.5;64,60,1" --dynamics pressure`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHeal,
}

func init() {
	f := healCmd.Flags()
	f.StringVarP(&healOutput, "output", "o", "", "Output file (single input only)")
	f.StringVar(&healSuffix, "suffix", "-healed", "Suffix added to input names when --output is not set")
	f.IntVar(&healJobs, "jobs", 0, "Images healed in parallel, 0 for one per CPU (env: GIMPHEAL_JOBS)")
	f.StringVar(&healSource, "source", "", `Source point "X,Y"`)
	f.StringVar(&healStroke, "stroke", "", `Stroke points "X,Y[,P];X,Y[,P];..."`)
	f.Float64Var(&healBrushSize, "brush-size", 20, "Diameter of the generated brush in pixels")
	f.Float64Var(&healHardness, "hardness", 0.5, "Hardness of the generated brush (0-1)")
	f.StringVar(&healBrushImage, "brush-image", "", "Image whose alpha (or inverted gray) is the brush")
	f.Float64Var(&healScale, "brush-scale", 1, "Brush scale factor")
	f.Float64Var(&healOpacity, "opacity", 1, "Stroke opacity (0-1)")
	f.StringVar(&healAlign, "align", "none", "Source alignment: none, aligned, registered or fixed")
	f.StringVar(&healMode, "mode", "soft", "Brush application: soft, hard or pressure")
	f.StringVar(&healDynamics, "dynamics", "fixed", "Paint dynamics: fixed, pressure or fade")
	f.Float64Var(&healFadeLength, "fade-length", 100, "Fade length for --dynamics fade")
	f.StringVar(&healFadeUnit, "fade-unit", "px", "Fade length unit: px or percent")
	f.StringVar(&healFadeRepeat, "fade-repeat", "none", "Fade repeat: none, sawtooth or triangular")
	f.BoolVar(&healFadeRev, "fade-reverse", false, "Reverse the fade direction")
	f.IntVar(&healMaxIter, "max-iterations", heal.DefaultMaxIterations, "Solver iteration cap per dab (env: GIMPHEAL_MAX_ITERATIONS)")
	f.BoolVar(&healLinear, "linear", false, "Store pixels in linear light between dabs")
	f.IntVar(&healQuality, "quality", imageio.DefaultJPEGQuality, "JPEG output quality (1-100)")
	_ = healCmd.MarkFlagRequired("source")
	_ = healCmd.MarkFlagRequired("stroke")
	rootCmd.AddCommand(healCmd)
}

// healJob is the shared, read-only configuration of one heal run.
type healJob struct {
	source paint.Coords
	points []paint.Coords
	brush  paint.Brush
	opts   paint.Options
	format heal.Format
}

// healResult counts what a stroke did to one image.
type healResult struct {
	dabs    int
	skipped int
}

func runHeal(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	tag := resolveLang()
	p := locale.Printer(tag)

	if healOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output needs exactly one input, got %d", len(args))
	}

	job, err := newHealJob()
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var mu sync.Mutex

	jobs := make([]parallel.Job, len(args))
	for i, in := range args {
		out := outputPath(in)
		jobs[i] = func(ctx context.Context) error {
			res, err := healFile(ctx, in, out, job)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			p.Fprintf(stdout, locale.Healed, in, res.dabs, res.skipped)
			fmt.Fprintln(stdout)
			p.Fprintf(stdout, locale.Wrote, out)
			fmt.Fprintln(stdout)
			return nil
		}
	}

	pool := parallel.NewWorkerPool(resolveJobs(len(args)))
	defer pool.Close()

	errs := pool.Run(cmd.Context(), jobs)

	healed := 0
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", args[i], paint.Message(err, tag))
			continue
		}
		healed++
	}
	if len(args) > 1 {
		p.Fprintf(stdout, locale.Summary, healed, len(args))
		fmt.Fprintln(stdout)
	}

	if healed != len(args) {
		return &ExitError{Code: 1}
	}
	return nil
}

// newHealJob validates the flags and builds the stroke configuration.
func newHealJob() (healJob, error) {
	tag := resolveLang()

	src, err := parsePoint(healSource)
	if err != nil {
		return healJob{}, fmt.Errorf("--source: %w", err)
	}
	points, err := parsePoints(healStroke)
	if err != nil {
		return healJob{}, fmt.Errorf("%s: %w", locale.Sprintf(tag, locale.InvalidPoints, healStroke), err)
	}

	opts, err := buildOptions()
	if err != nil {
		return healJob{}, err
	}

	brush, err := buildBrush()
	if err != nil {
		return healJob{}, err
	}

	format := heal.FormatRGBAPerceptual
	if healLinear {
		format = heal.FormatRGBA
	}

	return healJob{source: src, points: points, brush: brush, opts: opts, format: format}, nil
}

func buildOptions() (paint.Options, error) {
	opts := paint.DefaultOptions()

	if healOpacity < 0 || healOpacity > 1 {
		return opts, fmt.Errorf("--opacity must be in [0,1], got %g", healOpacity)
	}
	if healScale <= 0 {
		return opts, fmt.Errorf("--brush-scale must be positive, got %g", healScale)
	}
	opts.Opacity = healOpacity
	opts.BrushScale = healScale

	var err error
	if opts.Align, err = parseAlign(healAlign); err != nil {
		return opts, err
	}
	if opts.Mode, err = parseMode(healMode); err != nil {
		return opts, err
	}
	if opts.Dynamics, err = parseDynamics(healDynamics); err != nil {
		return opts, err
	}
	if opts.Fade.Unit, err = parseFadeUnit(healFadeUnit); err != nil {
		return opts, err
	}
	if opts.Fade.Repeat, err = parseRepeat(healFadeRepeat); err != nil {
		return opts, err
	}
	opts.Fade.Length = healFadeLength
	opts.Fade.Reverse = healFadeRev

	maxIter, err := resolveMaxIterations()
	if err != nil {
		return opts, err
	}
	opts.Solver = []heal.Option{
		heal.WithMaxIterations(maxIter),
		heal.WithPool(fieldPool),
	}
	return opts, nil
}

// fieldPool recycles solver fields across dabs and images.
var fieldPool = heal.NewPool[float64](8)

func buildBrush() (paint.Brush, error) {
	if healBrushImage != "" {
		img, _, err := imageio.Load(healBrushImage)
		if err != nil {
			return nil, fmt.Errorf("--brush-image: %w", err)
		}
		return paint.NewImageBrush(img), nil
	}
	if healBrushSize <= 0 {
		return nil, fmt.Errorf("--brush-size must be positive, got %g", healBrushSize)
	}
	if healHardness < 0 || healHardness > 1 {
		return nil, fmt.Errorf("--hardness must be in [0,1], got %g", healHardness)
	}
	return paint.NewGeneratedBrush(healBrushSize/2, healHardness), nil
}

// healFile runs the stroke on the image at in and writes the result to out.
func healFile(ctx context.Context, in, out string, job healJob) (healResult, error) {
	var res healResult

	layer, err := imageio.LoadLayer(in, job.format)
	if err != nil {
		return res, err
	}

	stroke, err := paint.NewStroke(layer, job.brush, job.opts)
	if err != nil {
		return res, err
	}
	stroke.SetSource(layer, job.source)
	if err := stroke.Start(job.points[0]); err != nil {
		return res, err
	}

	for _, c := range job.points {
		if err := ctx.Err(); err != nil {
			stroke.Finish()
			return res, err
		}
		m, err := stroke.Motion(c)
		if err != nil {
			stroke.Finish()
			return res, err
		}
		res.dabs++
		if m.Skipped {
			res.skipped++
		}
	}
	stroke.Finish()

	heal.Logger().Info("gimpheal: image healed",
		"input", in,
		"output", out,
		"dabs", res.dabs,
		"skipped", res.skipped,
	)

	return res, imageio.SaveLayer(out, layer, healQuality)
}

// outputPath returns --output, or in with the suffix before its extension.
func outputPath(in string) string {
	if healOutput != "" {
		return healOutput
	}
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + healSuffix + ext
}

// resolveJobs returns the worker count: --jobs, then GIMPHEAL_JOBS, then
// GOMAXPROCS, never more than the number of images.
func resolveJobs(n int) int {
	jobs := healJobs
	if jobs <= 0 {
		if v, err := strconv.Atoi(os.Getenv("GIMPHEAL_JOBS")); err == nil {
			jobs = v
		}
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, n)
}

func resolveMaxIterations() (int, error) {
	if healMaxIter != heal.DefaultMaxIterations {
		if healMaxIter < 1 {
			return 0, fmt.Errorf("--max-iterations must be at least 1, got %d", healMaxIter)
		}
		return healMaxIter, nil
	}
	if v := os.Getenv("GIMPHEAL_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("GIMPHEAL_MAX_ITERATIONS must be a positive integer, got %q", v)
		}
		return n, nil
	}
	return healMaxIter, nil
}
