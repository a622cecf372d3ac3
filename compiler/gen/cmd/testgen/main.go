// testgen refreshes the golden files of the historical test case.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/syssam/namegen/compiler/gen"
	"github.com/syssam/namegen/compiler/load"
)

func main() {
	dir := filepath.Join("compiler", "gen", "testdata", "historical")
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	ctx := context.Background()

	lists, err := load.LoadAll(ctx,
		filepath.Join(dir, "svgtags.in"),
		filepath.Join(dir, "svgattrs.in"),
		filepath.Join(dir, "xlinkattrs.in"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load lists: %v\n", err)
		os.Exit(1)
	}
	l := gen.Lists{Tags: lists[0].Names, Attrs: lists[1].Names, XLink: lists[2].Names}

	var goldens []gen.Artifact
	for _, guarded := range []bool{false, true} {
		opts := []gen.Option{gen.WithTarget(dir)}
		if !guarded {
			opts = append(opts, gen.WithFeatures(gen.FeatureUnguardedInit))
		}
		res, err := gen.Build(ctx, gen.MustNewConfig(opts...), l)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			os.Exit(1)
		}
		for _, a := range res.Artifacts {
			switch {
			case !guarded:
				a.Path += ".golden"
			case a.Path == "SVGNames.cpp":
				a.Path = "SVGNames.guarded.cpp.golden"
			default:
				// Headers do not depend on the init guard.
				continue
			}
			goldens = append(goldens, a)
		}
	}

	w := gen.NewWriter(dir)
	if err := w.Write(ctx, goldens); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write goldens: %v\n", err)
		os.Exit(1)
	}
	m := w.Metrics()
	fmt.Printf("%s: %d written, %d unchanged\n", dir, m.FilesWritten, m.FilesUnchanged)
}
