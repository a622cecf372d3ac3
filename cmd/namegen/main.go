// Command namegen compiles the SVG, HTML and XLink name lists into the
// qualified-name declarations of the document engine.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/syssam/namegen/compiler"
	"github.com/syssam/namegen/compiler/gen"
)

// Exit codes.
const (
	exitOK          = 0 // success
	exitError       = 1 // bad usage, unreadable input or write failure
	exitDiagnostics = 2 // strict mode rejected the name lists
)

const usage = `namegen - qualified name declaration compiler

Usage:
  namegen [options]

Reads svgtags.in, svgattrs.in and xlinkattrs.in and writes SVGNames.h,
XLinkNames.h and SVGNames.cpp.

Options:
  -tags FILE      tag name list (default svgtags.in)
  -attrs FILE     attribute name list (default svgattrs.in)
  -xlink FILE     linking attribute name list (default xlinkattrs.in)
  -out DIR        output directory (default .)
  -config FILE    YAML configuration file
  -feature NAME   enable a feature (repeatable)
  -strict         fail when diagnostics are reported
  -watch          regenerate whenever an input list changes
  -v              enable debug logging
  -vv             enable trace logging (implies -v)
  -h              show help

Features:
`

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type cli struct {
	tags, attrs, xlink string
	out                string
	configFile         string
	features           stringList
	strict             bool
	watch              bool
	verbose, trace     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("namegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	var c cli
	fs.StringVar(&c.tags, "tags", "", "")
	fs.StringVar(&c.attrs, "attrs", "", "")
	fs.StringVar(&c.xlink, "xlink", "", "")
	fs.StringVar(&c.out, "out", "", "")
	fs.StringVar(&c.configFile, "config", "", "")
	fs.Var(&c.features, "feature", "")
	fs.BoolVar(&c.strict, "strict", false, "")
	fs.BoolVar(&c.watch, "watch", false, "")
	fs.BoolVar(&c.verbose, "v", false, "")
	fs.BoolVar(&c.trace, "vv", false, "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return exitOK
		}
		printUsage(stderr)
		return exitError
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected argument: %s\n\n", fs.Arg(0))
		printUsage(stderr)
		return exitError
	}

	cfg, err := c.config(stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "namegen: %v\n", err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if c.watch {
		err := compiler.Watch(ctx, cfg, compiler.DefaultDebounce, func(res *gen.Result, err error) {
			report(stderr, res, err)
		})
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "namegen: %v\n", err)
			return exitError
		}
		return exitOK
	}
	res, err := compiler.Generate(ctx, cfg)
	return report(stderr, res, err)
}

// config builds the run configuration: defaults, then the config file, then
// the flags.
func (c *cli) config(stderr io.Writer) (*gen.Config, error) {
	cfg := gen.DefaultConfig()
	if c.configFile != "" {
		var err error
		if cfg, err = gen.LoadConfigFile(c.configFile); err != nil {
			return nil, err
		}
	}
	in := cfg.Inputs
	if c.tags != "" {
		in.Tags = c.tags
	}
	if c.attrs != "" {
		in.Attrs = c.attrs
	}
	if c.xlink != "" {
		in.XLink = c.xlink
	}
	opts := []gen.Option{
		gen.WithInputs(in.Tags, in.Attrs, in.XLink),
		gen.WithFeatureNames(c.features...),
	}
	if c.out != "" {
		opts = append(opts, gen.WithTarget(c.out))
	}
	if c.strict {
		opts = append(opts, gen.WithStrict())
	}
	opts = append(opts, gen.WithLogger(c.logger(stderr)))
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cli) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case c.trace:
		level = gen.LevelTrace
	case c.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// report prints the outcome of a run and returns its exit code.
func report(stderr io.Writer, res *gen.Result, err error) int {
	if res != nil && len(res.Diagnostics) > 0 && err == nil {
		_, _ = fmt.Fprintf(stderr, "namegen: %d diagnostic(s) reported\n", len(res.Diagnostics))
	}
	var diagErr *gen.DiagnosticsError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &diagErr):
		for _, d := range diagErr.Diagnostics {
			_, _ = fmt.Fprintf(stderr, "namegen: %s\n", d)
		}
		return exitDiagnostics
	default:
		_, _ = fmt.Fprintf(stderr, "namegen: %v\n", err)
		return exitError
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, usage)
	for _, f := range gen.AllFeatures {
		_, _ = fmt.Fprintf(w, "  %-16s %s (%s)\n", f.Name, f.Description, f.Stage)
	}
}
