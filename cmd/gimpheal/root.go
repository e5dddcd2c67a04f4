package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/heal"
	"github.com/gogpu/heal/internal/locale"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	lang    string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "gimpheal",
	Short:         "Seamless healing brush for raster images",
	Version:       Version,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(cmd.ErrOrStderr(), resolveVerbose())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Message language, e.g. en, de, fr (env: GIMPHEAL_LANG, LANG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver and stroke details to stderr (env: GIMPHEAL_VERBOSE)")
}

// resolveLang picks the message language from the flag, GIMPHEAL_LANG or
// LANG, in that order.
func resolveLang() language.Tag {
	if lang != "" {
		return locale.Match(lang)
	}
	if v := os.Getenv("GIMPHEAL_LANG"); v != "" {
		return locale.Match(v)
	}
	return locale.Match(posixLocale(os.Getenv("LANG")))
}

// posixLocale turns "de_DE.UTF-8" into "de-DE".
func posixLocale(s string) string {
	for i, r := range s {
		if r == '.' || r == '@' {
			s = s[:i]
			break
		}
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	b := []byte(s)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

func resolveVerbose() bool {
	if verbose {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv("GIMPHEAL_VERBOSE"))
	return err == nil && v
}

// setupLogging routes the library logger to w when enabled.
func setupLogging(w io.Writer, enabled bool) {
	if !enabled {
		heal.SetLogger(nil)
		return
	}
	heal.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// execute runs the root command under ctx. cobra only hands the context to
// subcommands that have none yet, so it is set on each of them here.
func execute(ctx context.Context) error {
	for _, c := range rootCmd.Commands() {
		c.SetContext(ctx)
	}
	return rootCmd.ExecuteContext(ctx)
}
