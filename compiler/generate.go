// Package compiler runs the name list compiler: it loads the three name
// lists, builds the artifacts and writes them to the target directory.
package compiler

import (
	"context"
	"log/slog"
	"time"

	"github.com/syssam/namegen/compiler/gen"
	"github.com/syssam/namegen/compiler/load"
)

// Generate runs the generator once. Every input list is read and every
// artifact is rendered before anything is written, so a failure leaves the
// target directory as it was.
func Generate(ctx context.Context, c *gen.Config) (*gen.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := logger(c).With(slog.String("component", "compiler"))
	start := time.Now()

	lists, err := load.LoadAll(ctx, c.Inputs.Paths()...)
	if err != nil {
		return nil, err
	}
	for _, l := range lists {
		log.LogAttrs(ctx, slog.LevelDebug, "list loaded",
			slog.String("path", l.Path),
			slog.Int("names", len(l.Names)))
	}

	res, err := gen.Build(ctx, c, gen.Lists{
		Tags:  lists[0].Names,
		Attrs: lists[1].Names,
		XLink: lists[2].Names,
	})
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := gen.Write(ctx, c, res); err != nil {
		return res, err
	}
	log.LogAttrs(ctx, slog.LevelDebug, "generation complete",
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}

func logger(c *gen.Config) *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
