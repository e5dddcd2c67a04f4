package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gogpu/heal/internal/imageio"
)

// resetFlags restores every flag to its default before and after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), healCmd.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}
	reset()
	t.Cleanup(reset)
	t.Setenv("GIMPHEAL_LANG", "")
	t.Setenv("GIMPHEAL_JOBS", "")
	t.Setenv("GIMPHEAL_VERBOSE", "")
	t.Setenv("GIMPHEAL_MAX_ITERATIONS", "")
	t.Setenv("LANG", "")
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runContext(t, t.Context(), args...)
}

// runContext is run under ctx.
func runContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := execute(ctx)
	return stdout.String(), stderr.String(), err
}

// writeBlemish writes a 64x64 gray image with a bright 3x3 spot centred
// on (40,40) and returns its path.
func writeBlemish(t *testing.T, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.SetNRGBA(x, y, color.NRGBA{R: 102, G: 102, B: 102, A: 255})
		}
	}
	for y := 39; y <= 41; y++ {
		for x := 39; x <= 41; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), name)
	if err := imageio.Save(path, img, 0); err != nil {
		t.Fatal(err)
	}
	return path
}
